package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Spanner SpannerConfig `mapstructure:"spanner"`
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Log     LogConfig     `mapstructure:"log"`
	Outbox  OutboxConfig  `mapstructure:"outbox"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"` // development, staging, production
}

// SpannerConfig holds the database path.
type SpannerConfig struct {
	Database string `mapstructure:"database"`
}

// GRPCConfig holds gRPC server settings.
type GRPCConfig struct {
	Port string `mapstructure:"port"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutboxConfig holds retention settings for cmd/cleanup_outbox.
type OutboxConfig struct {
	CompletedRetentionDays int `mapstructure:"completed_retention_days"`
	FailedRetentionDays    int `mapstructure:"failed_retention_days"`
}

// Load reads an optional config.yaml from the working directory or ./config, then
// applies environment overrides (SPANNER_DATABASE, GRPC_PORT, LOG_LEVEL...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

// LoadWithPath loads configuration from a specific file.
func LoadWithPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "marquee-pricing-service")
	v.SetDefault("app.env", "development")

	// Local emulator database
	v.SetDefault("spanner.database", "projects/test-project/instances/dev-instance/databases/marquee-pricing-db")

	v.SetDefault("grpc.port", "9090")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", "15s")

	v.SetDefault("log.level", "info")

	v.SetDefault("outbox.completed_retention_days", 7)
	v.SetDefault("outbox.failed_retention_days", 30)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Spanner.Database == "" {
		return fmt.Errorf("spanner.database is required")
	}
	if !strings.HasPrefix(c.Spanner.Database, "projects/") {
		return fmt.Errorf("spanner.database must be a full database path, got %q", c.Spanner.Database)
	}
	if c.GRPC.Port == "" || c.HTTP.Port == "" {
		return fmt.Errorf("grpc.port and http.port are required")
	}
	if c.GRPC.Port == c.HTTP.Port {
		return fmt.Errorf("grpc.port and http.port must differ, both are %s", c.GRPC.Port)
	}
	switch c.App.Env {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("app.env must be development, staging or production, got %q", c.App.Env)
	}
	if c.Outbox.CompletedRetentionDays < 1 || c.Outbox.FailedRetentionDays < 1 {
		return fmt.Errorf("outbox retention must be at least one day")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
