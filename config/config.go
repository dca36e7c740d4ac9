package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required,numeric"`
	Env          string        `koanf:"env" validate:"oneof=development production test"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
}

type DatabaseConfig struct {
	// URL is the connection string: postgres://, postgresql://, mysql://,
	// sqlite:// or a bare go-sql-driver/mysql DSN.
	URL             string        `koanf:"url" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type SecurityConfig struct {
	// RateLimitRequests is the number of requests allowed per IP within
	// RateLimitWindow. Zero disables the limiter.
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1"`
}

func (s ServerConfig) IsProduction() bool { return s.Env == "production" }

// Defaults returns the configuration used when nothing else is supplied.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			Env:          "development",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			URL:             "sqlite:///tmp/test.db",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			AutoMigrate:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{"*"},
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence, and validates the result.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"port":                 "server.port",
	"environment":          "server.env",
	"http_read_timeout":    "server.read_timeout",
	"http_write_timeout":   "server.write_timeout",
	"database_url":         "database.url",
	"db_max_idle_conns":    "database.max_idle_conns",
	"db_max_open_conns":    "database.max_open_conns",
	"db_conn_max_lifetime": "database.conn_max_lifetime",
	"db_auto_migrate":      "database.auto_migrate",
	"log_level":            "logging.level",
	"log_format":           "logging.format",
	"rate_limit_requests":  "security.rate_limit_requests",
	"rate_limit_window":    "security.rate_limit_window",
	"cors_origins":         "security.cors_origins",
}

// envKey maps a known environment variable to its config path. Unknown
// variables map to "" and are skipped by the provider.
func envKey(key string) string {
	return envMappings[strings.ToLower(key)]
}
