package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vanshika/finsight/backend/internal/store"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Store    StoreConfig
	Graph    GraphConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Logging  LoggingConfig
	Currency CurrencyConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host             string        `env:"SERVER_HOST"              envDefault:"0.0.0.0"`
	Port             int           `env:"SERVER_PORT"              envDefault:"8080"`
	ReadTimeout      time.Duration `env:"SERVER_READ_TIMEOUT"      envDefault:"10s"`
	WriteTimeout     time.Duration `env:"SERVER_WRITE_TIMEOUT"     envDefault:"15s"`
	IdleTimeout      time.Duration `env:"SERVER_IDLE_TIMEOUT"      envDefault:"60s"`
	ShutdownTimeout  time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"  envDefault:"10s"`
	AllowedOrigins   []string      `env:"SERVER_ALLOWED_ORIGINS"   envSeparator:","`
	AllowCredentials bool          `env:"SERVER_ALLOW_CREDENTIALS" envDefault:"false"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Mode string `env:"STORE_MODE" envDefault:"memory"`
}

// GraphConfig describes connectivity to the Neo4j graph database.
type GraphConfig struct {
	URI            string `env:"GRAPH_URI"`
	Database       string `env:"GRAPH_DATABASE"`
	Username       string `env:"GRAPH_USERNAME"`
	Password       string `env:"GRAPH_PASSWORD"`
	MaxConnections int    `env:"GRAPH_MAX_CONNECTIONS" envDefault:"10"`
}

// RedisConfig describes the key-value fallback backend.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"         envDefault:"localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB"           envDefault:"0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

// AuthConfig controls session resolution. An empty JWTSecret puts the server
// in demo mode, where the X-Demo-User header names the caller.
type AuthConfig struct {
	JWTSecret  string        `env:"AUTH_JWT_SECRET"`
	DemoUserID string        `env:"AUTH_DEMO_USER" envDefault:"demo-user"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LOG_LEVEL"          envDefault:"info"`
	Format        string `env:"LOG_FORMAT"         envDefault:"text"` // text|json
	IncludeCaller bool   `env:"LOG_INCLUDE_CALLER" envDefault:"false"`
}

// CurrencyConfig sets how monetary amounts are rendered.
type CurrencyConfig struct {
	Code   string `env:"CURRENCY_CODE"   envDefault:"INR"`
	Locale string `env:"CURRENCY_LOCALE" envDefault:"en"`
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the struct tags cannot express.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}

	mode, err := store.ParseMode(c.Store.Mode)
	if err != nil {
		return fmt.Errorf("invalid STORE_MODE: %w", err)
	}
	switch mode {
	case store.ModeGraph:
		if c.Graph.URI == "" {
			return errors.New("GRAPH_URI is required when STORE_MODE=graph")
		}
	case store.ModeKV:
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required when STORE_MODE=kv")
		}
	}

	if c.Auth.JWTSecret == "" && c.Auth.DemoUserID == "" {
		return errors.New("AUTH_DEMO_USER must be set when AUTH_JWT_SECRET is empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}
	if strings.TrimSpace(c.Currency.Code) == "" {
		return errors.New("CURRENCY_CODE is required")
	}
	return nil
}

// StoreMode returns the validated store mode.
func (c Config) StoreMode() store.Mode {
	mode, _ := store.ParseMode(c.Store.Mode)
	return mode
}
