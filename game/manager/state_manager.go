package manager

// State is the session state held by the StateManager.
type State int

const (
	Menu State = iota
	Playing
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event requests a state change.
type Event int

const (
	EventStart Event = iota
	EventPause
	EventResume
	EventCollide
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventCollide:
		return "collide"
	default:
		return "unknown"
	}
}

// Transition returns the state reached by applying ev in from. ok is false
// for every pair not listed, in which case the state is unchanged.
func Transition(from State, ev Event) (to State, ok bool) {
	switch from {
	case Menu, GameOver:
		if ev == EventStart {
			return Playing, true
		}
	case Playing:
		switch ev {
		case EventPause:
			return Paused, true
		case EventCollide:
			return GameOver, true
		}
	case Paused:
		if ev == EventResume {
			return Playing, true
		}
	}
	return from, false
}

// StateManager holds the current session state and only changes it through
// Transition.
type StateManager struct {
	state State
}

func NewStateManager() *StateManager {
	return &StateManager{state: Menu}
}

func (sm *StateManager) State() State {
	return sm.state
}

// Fire applies ev and reports whether the state changed.
func (sm *StateManager) Fire(ev Event) bool {
	to, ok := Transition(sm.state, ev)
	if ok {
		sm.state = to
	}
	return ok
}

// Running reports whether the fixed-step update should execute.
func (sm *StateManager) Running() bool {
	return sm.state == Playing
}
