package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Grid.TileCount != 20 || cfg.Canvas.Size != 400 {
		t.Errorf("board %d tiles on %dpx", cfg.Grid.TileCount, cfg.Canvas.Size)
	}
	if cfg.Scoring.FoodPoints != 10 {
		t.Errorf("food points %d", cfg.Scoring.FoodPoints)
	}
	wantStart := [][2]int{{10, 10}, {10, 11}, {10, 12}}
	if len(cfg.Snake.Start) != len(wantStart) {
		t.Fatalf("start body %v", cfg.Snake.Start)
	}
	for i := range wantStart {
		if cfg.Snake.Start[i] != wantStart[i] {
			t.Errorf("start[%d] = %v, want %v", i, cfg.Snake.Start[i], wantStart[i])
		}
	}
	if cfg.Snake.Direction != "up" || cfg.Storage.Key != "snakeHighScore" {
		t.Errorf("direction %q key %q", cfg.Snake.Direction, cfg.Storage.Key)
	}

	d := cfg.Derived
	if d.BaseInterval != 120*time.Millisecond || d.Step != 5*time.Millisecond || d.FloorInterval != 50*time.Millisecond {
		t.Errorf("intervals %v/%v/%v", d.BaseInterval, d.Step, d.FloorInterval)
	}
	if d.TileSize != 20 {
		t.Errorf("tile size %v", d.TileSize)
	}
	if d.WindowSize != 800 {
		t.Errorf("window size %d", d.WindowSize)
	}
	if d.LogLevel != slog.LevelInfo {
		t.Errorf("log level %v", d.LogLevel)
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := writeConfig(t, `
grid:
  tile_count: 25
timing:
  floor_interval_ms: 40
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.TileCount != 25 {
		t.Errorf("tile count %d", cfg.Grid.TileCount)
	}
	if cfg.Timing.BaseIntervalMs != 120 || cfg.Derived.FloorInterval != 40*time.Millisecond {
		t.Errorf("timing %+v", cfg.Timing)
	}
	if cfg.Derived.TileSize != 16 {
		t.Errorf("tile size %v", cfg.Derived.TileSize)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug {
		t.Errorf("log level %v", cfg.Derived.LogLevel)
	}
	if cfg.Window.Title != "Snake & Groove" {
		t.Errorf("title lost in merge: %q", cfg.Window.Title)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"tiny grid", "grid:\n  tile_count: 1\n", "tile_count"},
		{"canvas smaller than grid", "canvas:\n  size: 10\n", "canvas.size"},
		{"zero scale", "window:\n  scale: 0\n", "window.scale"},
		{"base below floor", "timing:\n  base_interval_ms: 30\n", "base_interval_ms"},
		{"bad direction", "snake:\n  direction: sideways\n", "snake.direction"},
		{"empty key", "storage:\n  key: \"\"\n", "storage.key"},
		{"bad level", "log:\n  level: chatty\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Grid.TileCount = 30
	cfg.Storage.Driver = "sqlite"

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.Grid.TileCount != 30 || back.Storage.Driver != "sqlite" {
		t.Errorf("round trip lost values: %+v %+v", back.Grid, back.Storage)
	}
}

func TestInitAndCfg(t *testing.T) {
	defer func() { global = nil }()
	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Grid.TileCount != 20 {
		t.Errorf("Cfg not populated")
	}
}
