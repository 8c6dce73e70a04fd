package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment     string        `validate:"required"`
	Port            string        `validate:"required,numeric"`
	AllowedOrigins  []string      `validate:"required,min=1,dive,required"`
	DBUrl           string
	LogLevel        string        `validate:"omitempty,oneof=debug info warn error"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	RegistrationURL string        `validate:"required,url"`
	EventCacheTTL   time.Duration `validate:"gt=0"`
}

const (
	defaultPort           = "5000"
	defaultRequestTimeout = 5 * time.Second
	defaultEventCacheTTL  = 24 * time.Hour
)

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: .env file couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            getEnv("PORT", defaultPort),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBUrl:           os.Getenv("DATABASE_URL"),
		LogLevel:        strings.ToLower(os.Getenv("LOG_LEVEL")),
		RegistrationURL: os.Getenv("REGISTRATION_URL"),
	}
	if cfg.RegistrationURL == "" {
		cfg.RegistrationURL = "http://localhost:" + cfg.Port
	}

	var err error
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return nil, err
	}
	if cfg.EventCacheTTL, err = getDuration("EVENT_CACHE_TTL", defaultEventCacheTTL); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
