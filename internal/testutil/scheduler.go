package testutil

import (
	"sync"
	"time"

	"github.com/sparklet/windot/internal/search"
)

// ManualScheduler is a search.AfterFunc that never fires on its own.
//
// Tests submit input, then call Fire to simulate the delay elapsing. Stopped
// timers are skipped, which lets a test observe exactly which evaluations a
// debouncer let through.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTimer
	delays  []time.Duration
}

type manualTimer struct {
	mu      sync.Mutex
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc records f without starting a timer.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) search.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{f: f}
	s.pending = append(s.pending, t)
	s.delays = append(s.delays, d)
	return t
}

// Fire runs every pending timer that has not been stopped, in scheduling
// order, and returns how many ran.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	fired := 0
	for _, t := range pending {
		t.mu.Lock()
		run := !t.stopped && !t.fired
		t.fired = true
		t.mu.Unlock()
		if run {
			t.f()
			fired++
		}
	}
	return fired
}

// Pending returns the number of timers scheduled and not yet fired or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		t.mu.Lock()
		if !t.stopped && !t.fired {
			n++
		}
		t.mu.Unlock()
	}
	return n
}

// Delays returns the delay passed to every AfterFunc call so far.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)
	return out
}
