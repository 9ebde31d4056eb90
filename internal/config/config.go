// Package config reads the server settings from the environment. Values in
// a .env file are picked up by godotenv before [Load] runs.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/biancatraining/promenade/internal/shared"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultPort            = 8080
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the server settings.
type Config struct {
	Host            string
	Port            int
	ContentFile     string
	LogLevel        log.Level
	ShutdownTimeout time.Duration
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads HOST, PORT, CONTENT_FILE, LOG_LEVEL and SHUTDOWN_TIMEOUT.
func Load() (*Config, error) {
	cfg := &Config{
		Host:            os.Getenv("HOST"),
		Port:            DefaultPort,
		ContentFile:     os.Getenv("CONTENT_FILE"),
		LogLevel:        log.InfoLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return nil, fmt.Errorf("%w: PORT %q", ErrInvalidConfig, port)
		}
		cfg.Port = p
	}

	level, err := shared.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	cfg.LogLevel = level

	if timeout := os.Getenv("SHUTDOWN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: SHUTDOWN_TIMEOUT %q", ErrInvalidConfig, timeout)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
