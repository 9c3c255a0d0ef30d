// Package config loads the countdown YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/countdown/games"
	"github.com/katalvlaran/countdown/logging"
)

// MaxTargetSpan bounds how many targets one range may cover.
const MaxTargetSpan = 1_000_000

var (
	// ErrInvalidRange indicates an empty, non-positive or oversized target
	// range.
	ErrInvalidRange = errors.New("config: invalid target range")

	// ErrInvalidCount indicates a game size the selection cannot supply.
	ErrInvalidCount = errors.New("config: invalid input count")

	// ErrInvalidSelection indicates a non-positive number in the selection.
	ErrInvalidSelection = errors.New("config: invalid selection")

	// ErrInvalidPreset indicates a preset pattern that cannot be dealt.
	ErrInvalidPreset = errors.New("config: invalid preset")

	// ErrInvalidAnalysis indicates a negative worker count or batch size.
	ErrInvalidAnalysis = errors.New("config: invalid analysis settings")
)

// Config holds every countdown setting.
type Config struct {
	Numbers  NumbersConfig  `yaml:"numbers"`
	Picker   PickerConfig   `yaml:"picker"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  logging.Config `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// NumbersConfig describes a numbers round.
type NumbersConfig struct {
	InputCount int `yaml:"input_count"`
	MinTarget  int `yaml:"min_target"`
	MaxTarget  int `yaml:"max_target"`
}

// PickerConfig lists the numbers games are drawn from.
type PickerConfig struct {
	Big     []int          `yaml:"big"`
	Small   []int          `yaml:"small"`
	Presets []games.Preset `yaml:"presets"`
}

// AnalysisConfig configures batch analysis of every game.
type AnalysisConfig struct {
	Workers   int    `yaml:"workers"`    // 0 means one per CPU
	BatchSize int    `yaml:"batch_size"` // games per worker request
	DBPath    string `yaml:"db_path"`    // empty disables the result cache
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the endpoint
}

// Default returns the standard game settings.
func Default() *Config {
	return &Config{
		Numbers: NumbersConfig{
			InputCount: games.DefaultCount,
			MinTarget:  101,
			MaxTarget:  999,
		},
		Picker: PickerConfig{
			Big:     games.DefaultBig(),
			Small:   games.DefaultSmall(),
			Presets: games.DefaultPresets(),
		},
		Analysis: AnalysisConfig{
			BatchSize: 10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	n := c.Numbers
	if err := CheckRange(n.MinTarget, n.MaxTarget); err != nil {
		return err
	}
	if n.InputCount < 1 || n.InputCount > len(c.Picker.Big)+len(c.Picker.Small) {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n.InputCount)
	}
	for _, v := range append(append([]int(nil), c.Picker.Big...), c.Picker.Small...) {
		if v < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidSelection, v)
		}
	}
	for _, p := range c.Picker.Presets {
		big := strings.Count(p.Pattern, string(games.Big))
		small := strings.Count(p.Pattern, string(games.Small))
		if big+small != len(p.Pattern) || big > len(c.Picker.Big) || small > len(c.Picker.Small) {
			return fmt.Errorf("%w: %q (%s)", ErrInvalidPreset, p.Pattern, p.Name)
		}
	}
	if c.Analysis.Workers < 0 || c.Analysis.BatchSize < 0 {
		return fmt.Errorf("%w: workers %d, batch %d", ErrInvalidAnalysis, c.Analysis.Workers, c.Analysis.BatchSize)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// CheckRange reports whether lo..hi is a usable target range: positive,
// non-empty and at most MaxTargetSpan values wide.
func CheckRange(lo, hi int) error {
	if lo < 1 || hi < lo || hi-lo >= MaxTargetSpan {
		return fmt.Errorf("%w: %d..%d", ErrInvalidRange, lo, hi)
	}

	return nil
}

// Selection returns the big numbers followed by the small ones.
func (c *Config) Selection() []int {
	return append(append([]int(nil), c.Picker.Big...), c.Picker.Small...)
}

// WorkerCount resolves Analysis.Workers, defaulting to one per CPU.
func (c *Config) WorkerCount() int {
	if c.Analysis.Workers > 0 {
		return c.Analysis.Workers
	}

	return runtime.NumCPU()
}
