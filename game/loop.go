package game

import (
	"time"
)

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameFunc receives the frame timestamp, monotonic since clock start.
type FrameFunc func(ts time.Duration)

// FrameClock schedules one-shot callbacks on the next display refresh.
type FrameClock interface {
	Now() time.Duration
	Request(fn FrameFunc) FrameID
	Cancel(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// ManualClock is a FrameClock pumped by its owner. The host calls Advance
// once per display refresh; tests call it with synthetic timestamps.
type ManualClock struct {
	now     time.Duration
	nextID  FrameID
	pending []frameRequest
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

func (c *ManualClock) Request(fn FrameFunc) FrameID {
	c.nextID++
	c.pending = append(c.pending, frameRequest{id: c.nextID, fn: fn})
	return c.nextID
}

func (c *ManualClock) Cancel(id FrameID) {
	for i, req := range c.pending {
		if req.id == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Pending is the number of callbacks waiting for the next Advance.
func (c *ManualClock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock to ts and runs every callback requested before
// the call. Callbacks requested while running wait for the next Advance.
// Timestamps never go backwards.
func (c *ManualClock) Advance(ts time.Duration) int {
	if ts > c.now {
		c.now = ts
	}
	due := c.pending
	c.pending = nil
	for _, req := range due {
		req.fn(c.now)
	}
	return len(due)
}

// Ramp maps a score to the delay between logic steps.
type Ramp struct {
	Base      time.Duration // interval at score 0
	Step      time.Duration // reduction per band
	BandScore int           // points per band
	Floor     time.Duration // lower bound
}

// DefaultRamp starts at 120ms and loses 5ms per 50 points down to 50ms.
func DefaultRamp() Ramp {
	return Ramp{
		Base:      120 * time.Millisecond,
		Step:      5 * time.Millisecond,
		BandScore: 50,
		Floor:     50 * time.Millisecond,
	}
}

// Interval returns max(Floor, Base - floor(score/BandScore)*Step).
func (r Ramp) Interval(score int) time.Duration {
	if score < 0 {
		score = 0
	}
	interval := r.Base
	if r.BandScore > 0 {
		interval -= time.Duration(score/r.BandScore) * r.Step
	}
	if interval < r.Floor {
		interval = r.Floor
	}
	return interval
}

// Loop runs a logic step at most once per MoveInterval while drawing on
// every frame. It owns at most one pending frame request at a time.
type Loop struct {
	clock   FrameClock
	running func() bool
	step    func()
	draw    func()

	pending   FrameID
	scheduled bool
	lastTime  time.Duration
	sinceMove time.Duration
	interval  time.Duration
}

func NewLoop(clock FrameClock, interval time.Duration, running func() bool, step, draw func()) *Loop {
	return &Loop{
		clock:    clock,
		running:  running,
		step:     step,
		draw:     draw,
		interval: interval,
	}
}

// Start begins a fresh loop at the clock's current time with an empty
// accumulator, replacing any loop already scheduled.
func (l *Loop) Start() {
	l.Cancel()
	l.sinceMove = 0
	now := l.clock.Now()
	l.lastTime = now
	l.frame(now)
}

// Resume restarts the loop after a pause. Time spent paused is not counted.
func (l *Loop) Resume() {
	l.Cancel()
	now := l.clock.Now()
	l.lastTime = now
	l.frame(now)
}

// Cancel drops the pending frame request, if any.
func (l *Loop) Cancel() {
	if !l.scheduled {
		return
	}
	l.clock.Cancel(l.pending)
	l.scheduled = false
}

// Active reports whether a frame is scheduled.
func (l *Loop) Active() bool {
	return l.scheduled
}

func (l *Loop) Interval() time.Duration {
	return l.interval
}

func (l *Loop) SetInterval(d time.Duration) {
	l.interval = d
}

func (l *Loop) frame(ts time.Duration) {
	l.scheduled = false
	if !l.running() {
		return
	}

	delta := ts - l.lastTime
	if delta < 0 {
		delta = 0
	}
	l.lastTime = ts
	l.sinceMove += delta

	if l.sinceMove >= l.interval {
		l.step()
		// Surplus beyond the interval is dropped, not carried.
		l.sinceMove = 0
	}

	l.draw()

	if l.running() {
		l.pending = l.clock.Request(l.frame)
		l.scheduled = true
	}
}
