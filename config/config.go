// Package config loads the game configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeConfig   `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Scale     int    `yaml:"scale"` // window pixels per canvas pixel
	TargetFPS int    `yaml:"target_fps"`
}

// CanvasConfig holds the logical drawing resolution.
type CanvasConfig struct {
	Size int `yaml:"size"` // square, in pixels
}

// GridConfig holds board dimensions.
type GridConfig struct {
	TileCount int `yaml:"tile_count"`
}

// SnakeConfig holds the body and heading each session starts with.
type SnakeConfig struct {
	Start     [][2]int `yaml:"start"`     // head first
	Direction string   `yaml:"direction"` // up, down, left or right
}

// ScoringConfig holds scoring parameters.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// TimingConfig holds the move interval ramp.
type TimingConfig struct {
	BaseIntervalMs  int `yaml:"base_interval_ms"`
	StepMs          int `yaml:"step_ms"`    // subtracted per band
	BandScore       int `yaml:"band_score"` // points per band
	FloorIntervalMs int `yaml:"floor_interval_ms"`
}

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory, file or sqlite
	Path   string `yaml:"path"`
	Key    string `yaml:"key"`
	Async  bool   `yaml:"async"`
}

// LogConfig holds logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	BaseInterval  time.Duration
	Step          time.Duration
	FloorInterval time.Duration
	TileSize      float32
	WindowSize    int32
	LogLevel      slog.Level
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Fields missing from the file keep their default.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Grid.TileCount < 2 {
		errs = append(errs, fmt.Errorf("grid.tile_count must be at least 2, got %d", c.Grid.TileCount))
	}
	if c.Canvas.Size < c.Grid.TileCount {
		errs = append(errs, fmt.Errorf("canvas.size %d smaller than grid.tile_count %d", c.Canvas.Size, c.Grid.TileCount))
	}
	if c.Window.Scale < 1 {
		errs = append(errs, fmt.Errorf("window.scale must be at least 1, got %d", c.Window.Scale))
	}
	if c.Timing.FloorIntervalMs <= 0 {
		errs = append(errs, errors.New("timing.floor_interval_ms must be positive"))
	}
	if c.Timing.BaseIntervalMs < c.Timing.FloorIntervalMs {
		errs = append(errs, errors.New("timing.base_interval_ms below floor"))
	}
	if c.Timing.StepMs < 0 || c.Timing.BandScore < 0 {
		errs = append(errs, errors.New("timing.step_ms and timing.band_score must not be negative"))
	}
	if len(c.Snake.Start) == 0 {
		errs = append(errs, errors.New("snake.start is empty"))
	}
	switch strings.ToLower(c.Snake.Direction) {
	case "up", "down", "left", "right":
	default:
		errs = append(errs, fmt.Errorf("snake.direction %q unknown", c.Snake.Direction))
	}
	if c.Storage.Key == "" {
		errs = append(errs, errors.New("storage.key is empty"))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.BaseInterval = time.Duration(c.Timing.BaseIntervalMs) * time.Millisecond
	c.Derived.Step = time.Duration(c.Timing.StepMs) * time.Millisecond
	c.Derived.FloorInterval = time.Duration(c.Timing.FloorIntervalMs) * time.Millisecond
	c.Derived.TileSize = float32(c.Canvas.Size) / float32(c.Grid.TileCount)
	c.Derived.WindowSize = int32(c.Canvas.Size * c.Window.Scale)
	c.Derived.LogLevel, _ = parseLevel(c.Log.Level)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
