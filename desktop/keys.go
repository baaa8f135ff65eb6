package desktop

import (
	"snake-groove/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultBindings maps arrows and WASD to movement, Space to
// start/pause/resume and P or Escape to pause.
func DefaultBindings() game.Bindings {
	return game.Bindings{
		game.Key(rl.KeyUp):     game.ActionUp,
		game.Key(rl.KeyW):      game.ActionUp,
		game.Key(rl.KeyDown):   game.ActionDown,
		game.Key(rl.KeyS):      game.ActionDown,
		game.Key(rl.KeyLeft):   game.ActionLeft,
		game.Key(rl.KeyA):      game.ActionLeft,
		game.Key(rl.KeyRight):  game.ActionRight,
		game.Key(rl.KeyD):      game.ActionRight,
		game.Key(rl.KeySpace):  game.ActionToggle,
		game.Key(rl.KeyP):      game.ActionPause,
		game.Key(rl.KeyEscape): game.ActionPause,
	}
}

// KeyHandler receives key-down events.
type KeyHandler interface {
	HandleKey(code game.Key)
}

// PumpKeys forwards every key pressed since the last frame, in order.
func PumpKeys(h KeyHandler) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		h.HandleKey(game.Key(key))
	}
}
