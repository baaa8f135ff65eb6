package game

import (
	"snake-groove/game/manager"
	"snake-groove/game/types"
)

// Key is a raw key code from the host's input source.
type Key int32

// Action is what a bound key asks for.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	// ActionToggle starts from the menu or game over, resumes when paused
	// and pauses while playing.
	ActionToggle
	// ActionPause only pauses.
	ActionPause
)

// Bindings maps key codes to actions. Unbound keys are ignored.
type Bindings map[Key]Action

// Controls is the engine surface the mapper drives.
type Controls interface {
	State() manager.State
	Direction() types.Point
	StartGame()
	PauseGame()
	ResumeGame()
}

// InputMapper turns key presses into a queued direction and session
// commands. The queued direction is consumed by the next logic step, so
// only the last accepted turn between two steps takes effect.
type InputMapper struct {
	bindings Bindings
	controls Controls
	next     types.Point
}

func NewInputMapper(bindings Bindings, controls Controls) *InputMapper {
	return &InputMapper{
		bindings: bindings,
		controls: controls,
	}
}

// OnKey handles one key-down event.
func (m *InputMapper) OnKey(code Key) {
	action, ok := m.bindings[code]
	if !ok {
		return
	}

	state := m.controls.State()
	if state != manager.Playing {
		if action != ActionToggle {
			return
		}
		switch state {
		case manager.Paused:
			m.controls.ResumeGame()
		case manager.Menu, manager.GameOver:
			m.controls.StartGame()
		}
		return
	}

	switch action {
	case ActionToggle, ActionPause:
		m.controls.PauseGame()
	case ActionUp:
		m.queue(types.Up)
	case ActionDown:
		m.queue(types.Down)
	case ActionLeft:
		m.queue(types.Left)
	case ActionRight:
		m.queue(types.Right)
	}
}

// queue accepts dir unless it reverses the direction last applied by a
// logic step. Whatever is already queued plays no part in the check.
func (m *InputMapper) queue(dir types.Point) {
	applied := m.controls.Direction()
	if (dir.X != 0 && dir.X == -applied.X) || (dir.Y != 0 && dir.Y == -applied.Y) {
		return
	}
	m.next = dir
}

// Next is the direction the next logic step will apply.
func (m *InputMapper) Next() types.Point {
	return m.next
}

// Reset sets the queued direction, used at session start.
func (m *InputMapper) Reset(dir types.Point) {
	m.next = dir
}
