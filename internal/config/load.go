package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PASSMETER_SERVER_PORT.
const EnvPrefix = "PASSMETER"

// Default values.
const (
	DefaultPort            = 5000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 4096
	DefaultDebounce        = 300 * time.Millisecond
	DefaultMetricsPath     = "/metrics"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_format", DefaultLogFormat)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("evaluator.common_passwords_file", "")
	v.SetDefault("meter.debounce", DefaultDebounce)
	v.SetDefault("meter.remote_url", "")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", DefaultMetricsPath)
}

// Load reads configuration from path (if non-empty) or from passmeter.yaml
// in the working directory or ./configs (if present), then applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("passmeter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// defaults and environment only
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("config file %s: %w", path, err)
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the
// filesystem or the environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			LogLevel:        DefaultLogLevel,
			LogFormat:       DefaultLogFormat,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Meter:   MeterConfig{Debounce: DefaultDebounce},
		Metrics: MetricsConfig{Enabled: true, Path: DefaultMetricsPath},
	}
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
