package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidPort         = errors.New("invalid server port")
	ErrInvalidMaxMutations = errors.New("max_mutations must be positive")
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Display DisplayConfig `mapstructure:"display"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	MaxMutations int           `mapstructure:"max_mutations"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int           `mapstructure:"max_body_bytes"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DisplayConfig controls how metrics are rendered for the UI.
type DisplayConfig struct {
	Locale      string `mapstructure:"locale"`
	Placeholder string `mapstructure:"placeholder"`
}

func validateConfig(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, cfg.Server.Port)
	}
	if cfg.Server.MaxMutations <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxMutations, cfg.Server.MaxMutations)
	}
	return nil
}
