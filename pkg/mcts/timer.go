package mcts

import (
	"time"
)

// Measures a single search, frozen once stopped
type _Timer struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func _NewTimer() *_Timer {
	return &_Timer{start: time.Now()}
}

// Start measuring from now
func (t *_Timer) Reset() {
	t.start = time.Now()
	t.elapsed = 0
	t.running = true
}

// Freeze the elapsed time
func (t *_Timer) Stop() {
	if t.running {
		t.elapsed = time.Since(t.start)
		t.running = false
	}
}

// Elapsed time in milliseconds, at least 1
func (t *_Timer) Deltatime() int {
	elapsed := t.elapsed
	if t.running {
		elapsed = time.Since(t.start)
	}
	return max(int(elapsed.Milliseconds()), 1)
}
