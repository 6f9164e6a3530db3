// Package config loads and validates the server configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"newskeep/pkg/config"
)

// minJWTSecretLength is the minimum byte length accepted for the
// token signing secret. HS256 keys shorter than the hash output are
// easier to brute-force.
const minJWTSecretLength = 32

// Config is the complete server configuration. It is loaded once at
// startup and passed to the components that need it; nothing reads
// environment variables after this point.
type Config struct {
	// Port the HTTP server listens on. PORT, default 8080.
	Port int

	// DatabaseURL is the Postgres DSN. DATABASE_URL, required.
	DatabaseURL string

	// JWTSecret signs bearer tokens. JWT_SECRET, required, at least
	// 32 bytes.
	JWTSecret []byte

	// TokenTTL is how long issued tokens stay valid. TOKEN_TTL,
	// default 1h.
	TokenTTL time.Duration

	// AppEnv selects runtime behavior. APP_ENV: "production" enables
	// static asset serving; anything else is treated as development.
	AppEnv string

	// StaticDir is the frontend bundle directory served in
	// production. STATIC_DIR, default ./client/build.
	StaticDir string

	// Version is reported by the health endpoint. APP_VERSION,
	// default "dev".
	Version string

	// ShutdownTimeout bounds graceful shutdown. SHUTDOWN_TIMEOUT,
	// default 10s.
	ShutdownTimeout time.Duration

	// MaxBodyBytes caps request body size. MAX_BODY_BYTES, default 1MB.
	MaxBodyBytes int64
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            config.GetEnvInt("PORT", 8080),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:        config.GetEnvDuration("TOKEN_TTL", time.Hour),
		AppEnv:          config.GetEnvString("APP_ENV", "development"),
		StaticDir:       config.GetEnvString("STATIC_DIR", "./client/build"),
		Version:         config.GetEnvString("APP_VERSION", "dev"),
		ShutdownTimeout: config.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxBodyBytes:    int64(config.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d", minJWTSecretLength, len(c.JWTSecret))
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %v", c.TokenTTL)
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}
