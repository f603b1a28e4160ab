// SPDX-License-Identifier: MIT

// Package config reads interpreter defaults from the environment.
//
// Variables (a .env file in the working directory is loaded first if present):
//
//	QSIM_SEED        uint64 seed for reproducible measurement; unset means non-deterministic
//	QSIM_MAX_QUBITS  largest register width, 1..circuit.MaxQubitsLimit (default 8)
//	QSIM_LOG_LEVEL   debug, info, warn, error or disabled (default info)
//	QSIM_LOG_PRETTY  human-readable console output instead of JSON (default false)
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/qsim/circuit"
	"github.com/rs/zerolog"
)

// ErrInvalidValue indicates an environment variable that does not parse or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds interpreter configuration
type Config struct {
	Seed      uint64
	Seeded    bool // Seed was set explicitly
	MaxQubits int
	LogLevel  string
	Pretty    bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		MaxQubits: getEnvAsInt("QSIM_MAX_QUBITS", circuit.DefaultMaxQubits),
		LogLevel:  getEnv("QSIM_LOG_LEVEL", "info"),
		Pretty:    getEnvAsBool("QSIM_LOG_PRETTY", false),
	}
	if v := os.Getenv("QSIM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("QSIM_SEED=%q: %w", v, ErrInvalidValue)
		}
		cfg.Seed, cfg.Seeded = seed, true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.MaxQubits < 1 || c.MaxQubits > circuit.MaxQubitsLimit {
		return fmt.Errorf("QSIM_MAX_QUBITS=%d outside 1..%d: %w", c.MaxQubits, circuit.MaxQubitsLimit, ErrInvalidValue)
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("QSIM_LOG_LEVEL=%q: %w", c.LogLevel, ErrInvalidValue)
	}

	return nil
}

var levels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"disabled": zerolog.Disabled,
}

// Logger creates a structured logger writing to w
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, ok := levels[c.LogLevel]
	if !ok {
		level = zerolog.InfoLevel
	}

	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Options converts the configuration into interpreter options
func (c *Config) Options(log zerolog.Logger) []circuit.Option {
	opts := []circuit.Option{
		circuit.WithLogger(log),
		circuit.WithMaxQubits(c.MaxQubits),
	}
	if c.Seeded {
		opts = append(opts, circuit.WithSeed(c.Seed))
	}

	return opts
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
