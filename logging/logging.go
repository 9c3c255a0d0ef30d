// Package logging builds the zap loggers used across countdown.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel indicates a level name zap does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config selects the logger flavour.
type Config struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoding, caller and stack traces
	Encoding    string `yaml:"encoding"`    // json or console; empty picks the flavour default
}

// DefaultConfig logs at info in production form.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ParseLevel maps a level name to a zap level. The empty string is info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return l, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return l, nil
}

// New builds a logger for cfg. The returned AtomicLevel may be used to
// change verbosity after construction.
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}

	log, err := zc.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("logging: build: %w", err)
	}

	return log, zc.Level, nil
}
