package core

import (
	"fmt"
	"time"
)

// Stopwatch measures elapsed play time. Start begins a fresh measurement,
// Pause/Resume suspend it, Stop freezes it and Reset zeroes it. The zero
// value is not usable; construct with NewStopwatch.
type Stopwatch struct {
	now         func() time.Time
	startedAt   time.Time
	accumulated time.Duration
	running     bool
}

// NewStopwatch constructs a stopped, zeroed stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start zeroes the stopwatch and begins measuring.
func (s *Stopwatch) Start() {
	s.accumulated = 0
	s.startedAt = s.now()
	s.running = true
}

// Stop freezes the elapsed time. Equivalent to Pause but named for the end
// of a measurement.
func (s *Stopwatch) Stop() { s.Pause() }

// Pause suspends measurement, retaining the elapsed time so far.
func (s *Stopwatch) Pause() {
	if !s.running {
		return
	}
	s.accumulated += s.now().Sub(s.startedAt)
	s.running = false
}

// Resume continues measurement after a Pause or Stop.
func (s *Stopwatch) Resume() {
	if s.running {
		return
	}
	s.startedAt = s.now()
	s.running = true
}

// Reset zeroes the stopwatch and stops it.
func (s *Stopwatch) Reset() {
	s.accumulated = 0
	s.running = false
}

// Running reports whether the stopwatch is measuring.
func (s *Stopwatch) Running() bool { return s.running }

// Elapsed returns the measured time, live while running.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.accumulated + s.now().Sub(s.startedAt)
	}
	return s.accumulated
}

// Formatted renders the elapsed time as MM:SS.
func (s *Stopwatch) Formatted() string {
	total := int(s.Elapsed() / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
