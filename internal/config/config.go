package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment names accepted in the "env" config key.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// DefaultSigningKey is a documented placeholder. It keeps local development
// friction-free; a production deployment must override it.
const DefaultSigningKey = "change-this-signing-key-in-production"

const defaultTokenTTL = 24 * time.Hour

// ErrMissingSigningKey is returned when a production deployment still runs
// with the placeholder (or an empty) signing key.
var ErrMissingSigningKey = errors.New("auth.signing_key must be set in production")

// Config holds the process-wide settings, loaded once at startup and never
// mutated afterwards.
type Config struct {
	Port       string
	Env        string
	LogLevel   string
	DBPath     string
	SigningKey string
	TokenTTL   time.Duration
}

// Load reads configs/config.yml and environment overrides (prefix
// BOOKMARKHUB, e.g. BOOKMARKHUB_AUTH_SIGNING_KEY) and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")

	v.SetEnvPrefix("bookmarkhub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "bookmarkhub.db")
	v.SetDefault("auth.signing_key", DefaultSigningKey)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus env vars are a complete config.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		Env:        v.GetString("env"),
		LogLevel:   v.GetString("log.level"),
		DBPath:     v.GetString("db.path"),
		SigningKey: v.GetString("auth.signing_key"),
		TokenTTL:   v.GetDuration("auth.token_ttl"),
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.SigningKey == "" || c.SigningKey == DefaultSigningKey) {
		return ErrMissingSigningKey
	}
	return nil
}

// IsProduction reports whether the process runs in the production environment.
func (c *Config) IsProduction() bool { return c.Env == EnvProduction }

// IsTest reports whether the process runs in the test environment. Test-only
// affordances (the x-test-token header) are enabled exclusively here.
func (c *Config) IsTest() bool { return c.Env == EnvTest }
