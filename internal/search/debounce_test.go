package search_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparklet/windot/internal/search"
	"github.com/sparklet/windot/internal/testutil"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) record(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func TestDebouncer_OnlyLatestQueryRuns(t *testing.T) {
	sched := testutil.NewManualScheduler()
	rec := &recorder{}
	d := search.NewDebouncer(0, rec.record, search.WithScheduler(sched.AfterFunc))

	d.Submit("dog")
	d.Submit("dogs")

	assert.Equal(t, 1, sched.Pending(), "second keystroke cancels the first")
	assert.Equal(t, 1, sched.Fire())
	assert.Equal(t, []string{"dogs"}, rec.got())
	assert.Equal(t, []time.Duration{search.DefaultDelay, search.DefaultDelay}, sched.Delays())
}

func TestDebouncer_SeparatePauses(t *testing.T) {
	sched := testutil.NewManualScheduler()
	rec := &recorder{}
	d := search.NewDebouncer(50*time.Millisecond, rec.record, search.WithScheduler(sched.AfterFunc))

	d.Submit("ca")
	sched.Fire()
	d.Submit("cat")
	sched.Fire()

	assert.Equal(t, []string{"ca", "cat"}, rec.got())
}

func TestDebouncer_Stop(t *testing.T) {
	sched := testutil.NewManualScheduler()
	rec := &recorder{}
	d := search.NewDebouncer(0, rec.record, search.WithScheduler(sched.AfterFunc))

	d.Submit("fire")
	d.Stop()
	assert.Equal(t, 0, sched.Fire())
	assert.Empty(t, rec.got())
}

// A timer that has already fired cannot be stopped; its callback must still
// notice it was superseded.
type unstoppable struct{}

func (unstoppable) Stop() bool { return false }

func TestDebouncer_StaleCallbackIsDropped(t *testing.T) {
	var callbacks []func()
	after := func(_ time.Duration, f func()) search.Timer {
		callbacks = append(callbacks, f)
		return unstoppable{}
	}
	rec := &recorder{}
	d := search.NewDebouncer(0, rec.record, search.WithScheduler(after))

	d.Submit("dog")
	d.Submit("dogs")
	require.Len(t, callbacks, 2)

	callbacks[0]()
	callbacks[1]()
	assert.Equal(t, []string{"dogs"}, rec.got())
}

func TestDebouncer_RealTimer(t *testing.T) {
	done := make(chan string, 2)
	d := search.NewDebouncer(10*time.Millisecond, func(q string) { done <- q })

	d.Submit("dog")
	d.Submit("dogs")

	select {
	case q := <-done:
		assert.Equal(t, "dogs", q)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced query never ran")
	}

	select {
	case q := <-done:
		t.Fatalf("unexpected second evaluation %q", q)
	case <-time.After(50 * time.Millisecond):
	}
}
