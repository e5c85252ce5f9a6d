// Package config reads process configuration from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dabingnn/QSanguosha/internal/errors"
)

// Log levels accepted by LogLevel
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings shared by the commands
type Config struct {
	// AssetRoot is the directory images and audio paths are resolved against
	AssetRoot string `env:"QSGS_ASSET_ROOT" envDefault:"."`
	// DataDir holds packages/*.yaml and lang/*.yaml
	DataDir string `env:"QSGS_DATA_DIR" envDefault:"data"`
	// Locale is the preferred translation locale
	Locale string `env:"QSGS_LOCALE" envDefault:"zh-CN"`
	// RedisAddr enables the shared translation store when set
	RedisAddr string `env:"QSGS_REDIS_ADDR"`
	LogLevel  string `env:"QSGS_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("AssetRoot", c.AssetRoot, vb)
	errors.ValidateRequired("DataDir", c.DataDir, vb)
	errors.ValidateRequired("Locale", c.Locale, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), logLevels, vb)
	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RedisEnabled reports whether a redis address is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
