package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Evaluator EvaluatorConfig `mapstructure:"evaluator"`
	Meter     MeterConfig     `mapstructure:"meter"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server and logging settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json console"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	// MaxBodyBytes caps the size of a check_password request body.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"gt=0"`
}

// EvaluatorConfig selects the common-password list.
type EvaluatorConfig struct {
	// CommonPasswordsFile replaces the embedded list when set. One password
	// per line.
	CommonPasswordsFile string `mapstructure:"common_passwords_file" validate:"omitempty,file"`
}

// MeterConfig tunes the live meter.
type MeterConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
	// RemoteURL, when set, makes the meter score through a running server
	// instead of locally.
	RemoteURL string `mapstructure:"remote_url" validate:"omitempty,url"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
