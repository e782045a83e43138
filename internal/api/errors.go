package api

import (
	"net/http"

	"github.com/fittrack/fittrack/pkg/errors"
	"github.com/gin-gonic/gin"
)

func statusFor(code string) int {
	switch code {
	case errors.ErrCodeValidation, errors.ErrCodeSelfFriend:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDuplicateEmail, errors.ErrCodeAlreadyFriends, errors.ErrCodeNotFriends:
		return http.StatusConflict
	case errors.ErrCodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)

	message := err.Error()
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	}

	c.JSON(statusFor(code), gin.H{"code": code, "error": message})
}
