package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := New(ErrCodeValidation, "name must not be empty")
	if got, want := plain.Error(), "VALIDATION_ERROR: name must not be empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := Wrap(fmt.Errorf("connection refused"), ErrCodeStorageUnavailable, "failed to create user")
	if got, want := wrapped.Error(), "STORAGE_UNAVAILABLE: failed to create user (connection refused)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	wrapped := Wrap(cause, ErrCodeStorageUnavailable, "failed to create user")

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is() should reach the wrapped cause")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeSelfFriend, "no")); got != ErrCodeSelfFriend {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeSelfFriend)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != ErrCodeInternalError {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeInternalError)
	}
}
