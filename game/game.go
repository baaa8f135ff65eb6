package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snake-groove/game/entity"
	"snake-groove/game/manager"
	"snake-groove/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Settings are the tunables of one engine instance.
type Settings struct {
	TileCount      int
	FoodPoints     int
	Ramp           Ramp
	StartBody      []types.Point
	StartDirection types.Point
	HighScoreKey   string
	Seed           uint64
}

// DefaultSettings is the 20x20 board with a three-segment snake heading up
// from the centre.
func DefaultSettings() Settings {
	return Settings{
		TileCount:      20,
		FoodPoints:     10,
		Ramp:           DefaultRamp(),
		StartBody:      []types.Point{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 10, Y: 12}},
		StartDirection: types.Up,
		HighScoreKey:   "snakeHighScore",
		Seed:           uint64(time.Now().UnixNano()),
	}
}

// Validate checks that a session can start on the configured board.
func (s Settings) Validate() error {
	if s.TileCount < 2 {
		return fmt.Errorf("tile count %d too small", s.TileCount)
	}
	if s.FoodPoints < 0 {
		return fmt.Errorf("food points %d negative", s.FoodPoints)
	}
	if s.Ramp.Floor <= 0 || s.Ramp.Base < s.Ramp.Floor {
		return fmt.Errorf("move interval ramp %v..%v invalid", s.Ramp.Base, s.Ramp.Floor)
	}
	if len(s.StartBody) == 0 {
		return errors.New("start body empty")
	}
	if len(s.StartBody) >= s.TileCount*s.TileCount {
		return errors.New("start body leaves no room for food")
	}
	switch s.StartDirection {
	case types.Up, types.Down, types.Left, types.Right:
	default:
		return fmt.Errorf("start direction %v not axis aligned", s.StartDirection)
	}
	grid := types.Square(s.TileCount)
	seen := make(map[types.Point]bool, len(s.StartBody))
	for _, p := range s.StartBody {
		if !grid.Contains(p) {
			return fmt.Errorf("start segment %v outside %dx%d grid", p, s.TileCount, s.TileCount)
		}
		if seen[p] {
			return fmt.Errorf("start segment %v repeated", p)
		}
		seen[p] = true
	}
	return nil
}

// Frame is a read-only copy of what a view may draw.
type Frame struct {
	State     manager.State
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	Score     int
	HighScore int
}

// View draws a frame. It must not call back into the engine.
type View interface {
	Draw(f Frame)
}

// ErrNoView is returned when the engine has nothing to draw on.
var ErrNoView = errors.New("game: no view to draw on")

// Engine owns the board, the session state and the score. All methods must
// be called from the goroutine that pumps the frame clock.
type Engine struct {
	settings Settings
	grid     types.Grid
	snake    *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	scoreMgr     *manager.ScoreManager
	input        *InputMapper
	loop         *Loop
	view         View

	sessionID string
	closed    bool
}

// NewEngine builds an engine in the menu state and draws the first frame.
// store may be nil, in which case the high score is kept in memory only.
func NewEngine(settings Settings, bindings Bindings, store manager.HighScoreStore, clock FrameClock, view View) (*Engine, error) {
	if view == nil {
		return nil, ErrNoView
	}
	if clock == nil {
		return nil, errors.New("game: no frame clock")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid settings: %w", err)
	}

	grid := types.Square(settings.TileCount)
	collisionMgr := manager.NewCollisionManager(grid)
	rng := rand.New(rand.NewSource(settings.Seed))

	e := &Engine{
		settings:     settings,
		grid:         grid,
		snake:        entity.NewSnake(settings.StartBody, types.Still),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, rng),
		stateMgr:     manager.NewStateManager(),
		scoreMgr:     manager.NewScoreManager(store, settings.HighScoreKey),
		view:         view,
	}
	e.input = NewInputMapper(bindings, e)
	e.loop = NewLoop(clock, settings.Ramp.Interval(0), e.stateMgr.Running, e.step, e.redraw)

	slog.Info("engine ready",
		"tiles", settings.TileCount,
		"high_score", e.scoreMgr.GetHighScore(),
	)

	e.redraw()
	return e, nil
}

// StartGame begins a new session from the menu or after a game over.
func (e *Engine) StartGame() {
	if e.closed || !e.stateMgr.Fire(manager.EventStart) {
		return
	}

	e.snake = entity.NewSnake(e.settings.StartBody, e.settings.StartDirection)
	e.input.Reset(e.settings.StartDirection)
	e.scoreMgr.Reset()
	e.loop.SetInterval(e.settings.Ramp.Interval(0))
	e.sessionID = uuid.New().String()

	slog.Info("session started", "session", e.sessionID)

	if !e.foodMgr.GenerateFood(e.snake) {
		e.gameOver("board full")
		e.redraw()
		return
	}
	e.loop.Start()
}

// PauseGame stops the loop. Only valid while playing.
func (e *Engine) PauseGame() {
	if !e.stateMgr.Fire(manager.EventPause) {
		return
	}
	e.loop.Cancel()
	slog.Info("session paused", "session", e.sessionID, "score", e.scoreMgr.Score())
}

// ResumeGame continues a paused session.
func (e *Engine) ResumeGame() {
	if e.closed || !e.stateMgr.Fire(manager.EventResume) {
		return
	}
	slog.Info("session resumed", "session", e.sessionID)
	e.loop.Resume()
}

// HandleKey is the entry point for key-down events.
func (e *Engine) HandleKey(code Key) {
	if e.closed {
		return
	}
	e.input.OnKey(code)
}

// Close stops scheduling frames. The engine ignores commands afterwards.
func (e *Engine) Close() {
	e.closed = true
	e.loop.Cancel()
}

func (e *Engine) Score() int {
	return e.scoreMgr.Score()
}

func (e *Engine) HighScore() int {
	return e.scoreMgr.GetHighScore()
}

func (e *Engine) State() manager.State {
	return e.stateMgr.State()
}

// Direction is the velocity applied by the last logic step.
func (e *Engine) Direction() types.Point {
	return e.snake.Direction
}

// MoveInterval is the current delay between logic steps.
func (e *Engine) MoveInterval() time.Duration {
	return e.loop.Interval()
}

// Snapshot copies the drawable state.
func (e *Engine) Snapshot() Frame {
	return Frame{
		State:     e.stateMgr.State(),
		Grid:      e.grid,
		Snake:     e.snake.Segments(),
		Food:      e.foodMgr.GetFood(),
		Score:     e.scoreMgr.Score(),
		HighScore: e.scoreMgr.GetHighScore(),
	}
}

func (e *Engine) redraw() {
	e.view.Draw(e.Snapshot())
}

// step advances the snake by one cell.
func (e *Engine) step() {
	e.snake.Direction = e.input.Next()

	newHead := e.snake.GetHead().Add(e.snake.Direction)

	if collision := e.collisionMgr.CheckCollision(newHead, e.snake); collision != manager.NoCollision {
		e.gameOver(collision.String())
		return
	}

	e.snake.Move(newHead)

	if e.collisionMgr.IsFoodCollision(newHead, e.foodMgr.GetFood()) {
		score := e.scoreMgr.Add(e.settings.FoodPoints)
		e.loop.SetInterval(e.settings.Ramp.Interval(score))
		slog.Debug("food eaten", "session", e.sessionID, "score", score, "interval", e.loop.Interval())
		if !e.foodMgr.GenerateFood(e.snake) {
			e.gameOver("board full")
		}
		return
	}

	e.snake.RemoveTail()
}

func (e *Engine) gameOver(cause string) {
	if !e.stateMgr.Fire(manager.EventCollide) {
		return
	}
	e.loop.Cancel()

	score := e.scoreMgr.Score()
	record := e.scoreMgr.UpdateScore()
	slog.Info("game over",
		"session", e.sessionID,
		"cause", cause,
		"score", score,
		"length", e.snake.Len(),
		"new_high_score", record,
	)
}
