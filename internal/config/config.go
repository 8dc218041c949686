package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime configuration read from environment variables.
type Config struct {
	Env             string
	HTTPAddr        string
	DatabaseURL     string
	CORSOrigin      string
	RateLimitTTL    time.Duration
	RateLimitMax    int
	ShutdownTimeout time.Duration
}

// Load reads configuration via Viper from the environment (an optional
// local .env file is honoured, env vars win). DATABASE_URL and CORS_ORIGIN
// are required; a missing one is a startup error, not a default.
func Load() (*Config, error) {
	cfg := read()

	for _, req := range []struct{ key, val string }{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"CORS_ORIGIN", cfg.CORSOrigin},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("config: %s is required", req.key)
		}
	}
	if cfg.RateLimitTTL <= 0 {
		return nil, fmt.Errorf("config: RATE_LIMIT_TTL must be positive")
	}
	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("config: RATE_LIMIT_MAX must be positive")
	}

	return cfg, nil
}

// LoadDB is Load for the commands that only touch the database (migrate,
// seed). Only DATABASE_URL is required; HTTP settings are not validated.
func LoadDB() (*Config, error) {
	cfg := read()
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL is required")
	}
	return cfg, nil
}

func read() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // no file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 3000)
	v.SetDefault("RATE_LIMIT_TTL", 60)
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	return &Config{
		Env:             v.GetString("APP_ENV"),
		HTTPAddr:        fmt.Sprintf(":%d", v.GetInt("PORT")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		CORSOrigin:      v.GetString("CORS_ORIGIN"),
		RateLimitTTL:    time.Duration(v.GetInt("RATE_LIMIT_TTL")) * time.Second,
		RateLimitMax:    v.GetInt("RATE_LIMIT_MAX"),
		ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
	}
}
