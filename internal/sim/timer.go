package sim

import (
	"errors"
	"fmt"
	"time"
)

// DefaultStep is the elapsed time a StaticTimer reports per tick.
const DefaultStep = 1.0 / 60.0

// Timer kinds accepted by NewTimer.
const (
	TimerStatic = "static"
	TimerReal   = "real"
)

// ErrUnknownTimer is returned by NewTimer for an unrecognized kind.
var ErrUnknownTimer = errors.New("sim: unknown timer kind")

// Timer supplies the elapsed time of each tick and counts ticks.
// The game loop calls Update once per tick and then reads Elapsed.
type Timer interface {
	Ticks() int
	Elapsed() float64 // Seconds
	Start()
	Stop()
	Update()
	// Resume restarts measuring from now and keeps the tick count, so time
	// spent paused is not reported by the next Update.
	Resume()
}

// NewTimer builds a timer by kind. step is only used by static timers; a
// non-positive step means DefaultStep.
func NewTimer(kind string, step float64) (Timer, error) {
	switch kind {
	case TimerStatic, "":
		return NewStaticTimer(step), nil
	case TimerReal:
		return NewRealTimer(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownTimer, kind)
	}
}

// StaticTimer pretends every tick takes the same time regardless of the wall
// clock. Use it for deterministic runs.
type StaticTimer struct {
	ticks int
	step  float64
}

// NewStaticTimer creates a fixed-step timer.
func NewStaticTimer(step float64) *StaticTimer {
	if step <= 0 {
		step = DefaultStep
	}
	return &StaticTimer{step: step}
}

func (t *StaticTimer) Ticks() int       { return t.ticks }
func (t *StaticTimer) Elapsed() float64 { return t.step }
func (t *StaticTimer) Start()           {}
func (t *StaticTimer) Stop()            {}
func (t *StaticTimer) Update()          { t.ticks++ }
func (t *StaticTimer) Resume()          {}

// RealTimer measures wall-clock time between consecutive updates.
type RealTimer struct {
	now     func() time.Time
	last    time.Time
	elapsed float64
	ticks   int
	running bool
}

// NewRealTimer creates a timer backed by time.Now.
func NewRealTimer() *RealTimer {
	return NewRealTimerWithClock(time.Now)
}

// NewRealTimerWithClock creates a timer that reads time from now.
func NewRealTimerWithClock(now func() time.Time) *RealTimer {
	return &RealTimer{now: now}
}

// Ticks returns the number of updates since Start.
func (t *RealTimer) Ticks() int {
	return t.ticks
}

// Elapsed returns the seconds between the last update and the one before it
// (or Start). It is 0 until the timer has been started and updated.
func (t *RealTimer) Elapsed() float64 {
	return t.elapsed
}

// Start begins measuring and resets the tick counter.
func (t *RealTimer) Start() {
	t.last = t.now()
	t.elapsed = 0
	t.ticks = 0
	t.running = true
}

// Stop halts measuring and resets the tick counter.
func (t *RealTimer) Stop() {
	t.ticks = 0
	t.elapsed = 0
	t.running = false
}

// Resume begins measuring from now without resetting the tick counter.
func (t *RealTimer) Resume() {
	t.last = t.now()
	t.elapsed = 0
	t.running = true
}

// Update records one tick.
func (t *RealTimer) Update() {
	t.ticks++
	if !t.running {
		return
	}
	now := t.now()
	t.elapsed = now.Sub(t.last).Seconds()
	t.last = now
}
