package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"snake-groove/config"
	"snake-groove/desktop"
	"snake-groove/game"
	"snake-groove/game/types"
	"snake-groove/storage"
	"snake-groove/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed for food placement (0 = time-based)")
	ephemeral := flag.Bool("ephemeral", false, "Keep the high score in memory only")
	storeDriver := flag.String("store", "", "High score storage: memory, file or sqlite (empty = use config)")
	storePath := flag.String("store-path", "", "High score file or database path (empty = use config)")
	scale := flag.Int("scale", 0, "Window pixels per canvas pixel (0 = use config)")
	dumpConfig := flag.String("dump-config", "", "Write the effective config to this path and exit")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *scale > 0 {
		cfg.Window.Scale = *scale
		cfg.Derived.WindowSize = int32(cfg.Canvas.Size * *scale)
	}
	if *storeDriver != "" {
		cfg.Storage.Driver = *storeDriver
	}
	if *storePath != "" {
		cfg.Storage.Path = *storePath
	}
	if *ephemeral {
		cfg.Storage.Driver = "memory"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	slog.SetDefault(logger)

	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if err := run(cfg, uint64(rngSeed)); err != nil {
		slog.Error("snake exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, seed uint64) error {
	store, err := openStore(cfg.Storage)
	if err != nil {
		// The game still runs, it just forgets the high score on exit.
		slog.Warn("high score storage unavailable, using memory", "driver", cfg.Storage.Driver, "error", err)
		store = storage.NewMemoryStore()
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("closing high score storage", "error", err)
		}
	}()

	settings, err := settingsFromConfig(cfg, seed)
	if err != nil {
		return err
	}

	size := cfg.Derived.WindowSize
	rl.InitWindow(size, size+desktop.HUDHeight, cfg.Window.Title)
	defer rl.CloseWindow()
	// Escape is bound to pause.
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	surface, err := desktop.NewRaylibSurface(int32(cfg.Canvas.Size))
	if err != nil {
		return fmt.Errorf("acquiring drawing surface: %w", err)
	}
	defer surface.Unload()

	clock := game.NewManualClock()
	renderer := ui.NewRenderer(surface, ui.DefaultPalette())

	engine, err := game.NewEngine(settings, desktop.DefaultBindings(), store, clock, renderer)
	if err != nil {
		return err
	}
	defer engine.Close()

	slog.Info("window open",
		"size", size,
		"canvas", cfg.Canvas.Size,
		"storage", cfg.Storage.Driver,
		"seed", seed,
	)

	board := rl.Rectangle{X: 0, Y: desktop.HUDHeight, Width: float32(size), Height: float32(size)}

	for !rl.WindowShouldClose() {
		desktop.PumpKeys(engine)
		clock.Advance(time.Duration(rl.GetTime() * float64(time.Second)))

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		surface.Present(board)
		desktop.DrawHUD(engine, board)
		rl.EndDrawing()
	}
	return nil
}

func openStore(sc config.StorageConfig) (storage.Store, error) {
	store, err := storage.Open(sc.Driver, sc.Path)
	if err != nil {
		return nil, err
	}
	if sc.Async && !strings.EqualFold(sc.Driver, "memory") {
		return storage.NewAsync(store), nil
	}
	return store, nil
}

func settingsFromConfig(cfg *config.Config, seed uint64) (game.Settings, error) {
	body := make([]types.Point, len(cfg.Snake.Start))
	for i, p := range cfg.Snake.Start {
		body[i] = types.Point{X: p[0], Y: p[1]}
	}

	var dir types.Point
	switch strings.ToLower(cfg.Snake.Direction) {
	case "up":
		dir = types.Up
	case "down":
		dir = types.Down
	case "left":
		dir = types.Left
	case "right":
		dir = types.Right
	default:
		return game.Settings{}, fmt.Errorf("unknown snake direction %q", cfg.Snake.Direction)
	}

	s := game.Settings{
		TileCount:  cfg.Grid.TileCount,
		FoodPoints: cfg.Scoring.FoodPoints,
		Ramp: game.Ramp{
			Base:      cfg.Derived.BaseInterval,
			Step:      cfg.Derived.Step,
			BandScore: cfg.Timing.BandScore,
			Floor:     cfg.Derived.FloorInterval,
		},
		StartBody:      body,
		StartDirection: dir,
		HighScoreKey:   cfg.Storage.Key,
		Seed:           seed,
	}
	if err := s.Validate(); err != nil {
		return game.Settings{}, fmt.Errorf("invalid game settings: %w", err)
	}
	return s, nil
}
