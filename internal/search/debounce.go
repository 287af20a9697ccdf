package search

import (
	"sync"
	"time"
)

// DefaultDelay is the pause after the last keystroke before a query runs.
const DefaultDelay = 300 * time.Millisecond

// Timer is the cancellable handle returned by a scheduler.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs a callback with the most recent submitted query once input
// has paused for the configured delay. Each Submit cancels the evaluation
// scheduled by the previous one.
//
// Thread-safety: Submit and Stop may be called from any goroutine. The
// callback runs on the scheduler's goroutine and never concurrently with a
// stale query: a callback whose query has been superseded returns without
// calling fn.
type Debouncer struct {
	delay time.Duration
	fn    func(query string)
	after AfterFunc

	mu    sync.Mutex
	timer Timer
	gen   uint64
}

// DebounceOption configures a Debouncer.
type DebounceOption func(*Debouncer)

// WithScheduler replaces time.AfterFunc, for deterministic tests.
func WithScheduler(after AfterFunc) DebounceOption {
	return func(d *Debouncer) { d.after = after }
}

// NewDebouncer creates a Debouncer that calls fn. A non-positive delay
// selects DefaultDelay.
func NewDebouncer(delay time.Duration, fn func(query string), opts ...DebounceOption) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer{delay: delay, fn: fn, after: realAfterFunc}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit records query as the latest input and restarts the delay.
func (d *Debouncer) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.after(d.delay, func() { d.fire(gen, query) })
}

// Stop cancels any pending evaluation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Debouncer) fire(gen uint64, query string) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(query)
}
