package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_PASSWORD", "test_password")
	os.Setenv("DB_NAME", "fittrack_test")
	defer func() {
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("DB_NAME")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DBPassword != "test_password" {
		t.Errorf("DBPassword = %q, want %q", cfg.DBPassword, "test_password")
	}
	if cfg.DBName != "fittrack_test" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "fittrack_test")
	}
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want default %q", cfg.AppPort, "8080")
	}
}

func TestLoadConfig_MissingPassword(t *testing.T) {
	os.Clearenv()

	_, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig() expected error for missing DB_PASSWORD, got nil")
	}
}

func TestValidate_PoolSizes(t *testing.T) {
	tests := []struct {
		name      string
		idle      int
		open      int
		shouldErr bool
	}{
		{
			name:      "Valid pool",
			idle:      10,
			open:      100,
			shouldErr: false,
		},
		{
			name:      "Idle exceeds open",
			idle:      200,
			open:      100,
			shouldErr: true,
		},
		{
			name:      "Zero open",
			idle:      10,
			open:      0,
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DBPassword:     "password",
				DBMaxIdleConns: tt.idle,
				DBMaxOpenConns: tt.open,
			}

			err := cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid production config",
			cfg: &Config{
				AppEnv:    "production",
				DBSSLMode: "require",
			},
			shouldErr: false,
		},
		{
			name: "Development mode - no validation",
			cfg: &Config{
				AppEnv:    "development",
				DBSSLMode: "disable",
			},
			shouldErr: false,
		},
		{
			name: "Production without SSL",
			cfg: &Config{
				AppEnv:    "production",
				DBSSLMode: "disable",
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if tt.shouldErr && err == nil {
				t.Error("ValidateProductionSecurity() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateProductionSecurity() unexpected error = %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}
