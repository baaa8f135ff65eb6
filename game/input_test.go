package game

import (
	"testing"

	"snake-groove/game/manager"
	"snake-groove/game/types"
)

func TestMovementKeysIgnoredOutsidePlay(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.HandleKey(keyLeft)
	e.HandleKey(keyP)
	if e.State() != manager.Menu || e.input.Next() != types.Still {
		t.Fatalf("menu reacted to movement or pause: state=%v next=%v", e.State(), e.input.Next())
	}

	e.HandleKey(keySpace)
	if e.State() != manager.Playing {
		t.Fatalf("space should start from the menu, got %v", e.State())
	}

	e.HandleKey(keySpace)
	if e.State() != manager.Paused {
		t.Fatalf("space should pause while playing, got %v", e.State())
	}
	e.HandleKey(keyLeft)
	e.HandleKey(keyP)
	if e.State() != manager.Paused || e.input.Next() != types.Up {
		t.Fatalf("paused game reacted to input: state=%v next=%v", e.State(), e.input.Next())
	}

	e.HandleKey(keySpace)
	if e.State() != manager.Playing {
		t.Fatalf("space should resume, got %v", e.State())
	}
	e.HandleKey(keyP)
	if e.State() != manager.Paused {
		t.Fatalf("p should pause while playing, got %v", e.State())
	}
}

func TestSpaceRestartsAfterGameOver(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.HandleKey(keySpace)
	e.foodMgr.SetFood(e.snake.GetHead().Add(types.Up))
	e.step()
	place(e, []types.Point{{X: 0, Y: 0}}, types.Up)
	e.step()
	if e.State() != manager.GameOver || e.Score() != 10 {
		t.Fatalf("state=%v score=%d", e.State(), e.Score())
	}

	e.HandleKey(keySpace)
	if e.State() != manager.Playing || e.Score() != 0 {
		t.Errorf("restart: state=%v score=%d", e.State(), e.Score())
	}
}

func TestReversalRejected(t *testing.T) {
	tests := []struct {
		applied types.Point
		key     Key
	}{
		{types.Up, keyDown},
		{types.Down, keyUp},
		{types.Left, keyRight},
		{types.Right, keyLeft},
	}
	for _, tt := range tests {
		e, _, _ := newTestEngine(t, nil)
		e.StartGame()
		place(e, []types.Point{{X: 10, Y: 10}}, tt.applied)

		e.HandleKey(tt.key)

		if e.input.Next() != tt.applied {
			t.Errorf("applied %v: reversal accepted, next=%v", tt.applied, e.input.Next())
		}
	}
}

func TestReversalCheckedAgainstAppliedDirection(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.StartGame()
	e.foodMgr.SetFood(types.Point{X: 0, Y: 19})

	// Left then Right between two ticks: Right is judged against the applied
	// Up, not the queued Left, so it is accepted.
	e.HandleKey(keyLeft)
	e.HandleKey(keyRight)
	if e.input.Next() != types.Right {
		t.Fatalf("expected right queued, got %v", e.input.Next())
	}

	e.step()
	if e.Direction() != types.Right {
		t.Fatalf("expected right applied, got %v", e.Direction())
	}
	if head := e.snake.GetHead(); head != (types.Point{X: 11, Y: 10}) {
		t.Errorf("head at %v", head)
	}

	e.HandleKey(keyLeft)
	if e.input.Next() != types.Right {
		t.Errorf("left accepted while moving right")
	}
}

func TestOneTurnPerTick(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.StartGame()
	e.foodMgr.SetFood(types.Point{X: 0, Y: 19})

	// Up is applied; Left then Down arrive before the tick. Down is a
	// reversal of Up and is dropped, so the tick turns left only.
	e.HandleKey(keyLeft)
	e.HandleKey(keyDown)
	e.step()

	if e.Direction() != types.Left {
		t.Fatalf("expected left, got %v", e.Direction())
	}
	if head := e.snake.GetHead(); head != (types.Point{X: 9, Y: 10}) {
		t.Errorf("head at %v", head)
	}
}

func TestQueuedDirectionReused(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.StartGame()
	e.foodMgr.SetFood(types.Point{X: 0, Y: 19})

	e.HandleKey(keyRight)
	e.step()
	e.step()
	if head := e.snake.GetHead(); head != (types.Point{X: 12, Y: 10}) {
		t.Errorf("expected the last direction to repeat, head at %v", head)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.HandleKey(keyUnbound)
	if e.State() != manager.Menu {
		t.Fatalf("unbound key changed state")
	}
	e.StartGame()
	e.HandleKey(keyUnbound)
	if e.State() != manager.Playing || e.input.Next() != types.Up {
		t.Errorf("unbound key had an effect")
	}
}
