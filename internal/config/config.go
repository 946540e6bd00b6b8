package config

import (
	"fmt"
	"os"
)

// Config represents runtime configuration for the service.
// All values are environment-sourced; Load is called after godotenv has
// populated the environment from an optional .env file.
type Config struct {
	ServerAddress  string
	BaseURL        string
	AdminUser      string
	AdminPass      string
	DatabaseDriver string
	DatabaseDSN    string
	UploadDir      string
}

// Load assembles configuration from the environment. Admin credentials are
// required: there is no default pair to fall back to, so startup fails when
// they are unset.
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:        os.Getenv("BASE_URL"),
		AdminUser:      os.Getenv("ADMIN_USER"),
		AdminPass:      os.Getenv("ADMIN_PASS"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite3"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "./policy_pulse.sqlite"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}

	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		return nil, fmt.Errorf("ADMIN_USER and ADMIN_PASS must be configured")
	}

	cfg.ServerAddress = ":" + getEnv("PORT", "3000")
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
