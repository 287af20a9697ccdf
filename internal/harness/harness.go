package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/picker"
	"github.com/sparklet/windot/internal/search"
	"github.com/sparklet/windot/internal/state"
	"github.com/sparklet/windot/internal/store"
	"github.com/sparklet/windot/internal/testutil"
)

// StatePath is where scenarios keep the state file in the memory backend.
const StatePath = "/data/" + state.FileName

// Action names.
const (
	ActionSetTone  = "set_tone"
	ActionPick     = "pick"
	ActionGroup    = "group"
	ActionSearch   = "search"
	ActionType     = "type"
	ActionFlush    = "flush"
	ActionVariants = "variants"
	ActionFrequent = "frequent"
	ActionClear    = "clear"
	ActionReload   = "reload"

	// actionEvaluate marks a debounced search evaluation in the trace.
	actionEvaluate = "evaluate"
)

// Harness is the scenario execution engine.
// It runs one scenario with deterministic storage, ids and timers.
type Harness struct {
	scenario *Scenario
	catalog  *catalog.Catalog // restricted to the scenario's max_unicode
	backend  *state.MemoryBackend
	history  *store.Store
	sched    *testutil.ManualScheduler
	clock    *store.Clock
	logger   *slog.Logger

	session   *picker.Session
	box       *picker.SearchBox
	evalLimit int
	result    *Result
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against fresh in-memory state and history for
// isolation. An error is returned only when the scenario cannot run at all;
// failed expectations and assertions are reported through Result.
func Run(scenario *Scenario) (*Result, error) {
	cat, err := catalog.Builtin().UpTo(scenario.MaxUnicode)
	if err != nil {
		return nil, fmt.Errorf("failed to restrict catalog: %w", err)
	}

	backend := state.NewMemoryBackend()
	if scenario.Setup.State != "" {
		backend.Put(StatePath, []byte(scenario.Setup.State))
	}

	history, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory history: %w", err)
	}
	defer history.Close()

	h := &Harness{
		scenario: scenario,
		catalog:  cat,
		backend:  backend,
		history:  history,
		sched:    testutil.NewManualScheduler(),
		clock:    store.NewClockAt(0),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
		result:   NewResult(),
	}

	if err := h.open(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	for i, step := range scenario.Flow {
		h.executeStep(ctx, i, step)
	}
	h.box.Close()

	final, err := h.loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to reload final state: %w", err)
	}
	h.result.Final = FinalState{
		Tone:    final.PreferredTone().String(),
		Recents: glyphsOf(final.Recents(), 0),
	}

	for _, msg := range EvaluateAssertions(h.result, scenario.Assertions) {
		h.result.AddError(msg)
	}
	return h.result, nil
}

func (h *Harness) loadState() (*state.Store, error) {
	opts := []state.Option{state.WithBackend(h.backend), state.WithLogger(h.logger)}
	if h.scenario.Setup.Recover {
		return state.LoadOrRecover(StatePath, catalog.Builtin(), opts...)
	}
	return state.LoadOrCreate(StatePath, catalog.Builtin(), opts...)
}

// open starts a session the way a newly launched process would.
func (h *Harness) open() error {
	st, err := h.loadState()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	h.session = picker.New(st,
		picker.WithCatalog(h.catalog),
		picker.WithHistory(h.history),
		picker.WithLogger(h.logger))
	h.box = h.session.NewSearchBox(search.DefaultDelay, h.onResults, search.WithScheduler(h.sched.AfterFunc))
	return nil
}

// onResults runs inside ManualScheduler.Fire, on the flow goroutine.
func (h *Harness) onResults(query string, results []*catalog.Record) {
	h.result.Evaluations = append(h.result.Evaluations, query)
	h.result.addEvent(TraceEvent{
		Seq:     h.clock.Next(),
		Action:  actionEvaluate,
		Args:    map[string]string{"query": query},
		Outcome: OutcomeOK,
		Glyphs:  glyphsOf(results, h.evalLimit),
	})
}

func (h *Harness) executeStep(ctx context.Context, index int, step FlowStep) {
	idx := h.result.addEvent(TraceEvent{
		Seq:    h.clock.Next(),
		Action: step.Invoke,
		Args:   step.Args,
	})

	glyphs, outcome, err := h.perform(ctx, step)
	ev := &h.result.Trace[idx]
	ev.Outcome = outcome
	ev.Glyphs = glyphs
	if err != nil {
		ev.Outcome = OutcomeError
		ev.Error = err.Error()
	}

	h.logger.Debug("step completed", "step", index, "action", step.Invoke, "outcome", ev.Outcome)

	if step.Expect != nil {
		if msg := checkExpect(index, step, *ev); msg != "" {
			h.result.AddError(msg)
		}
	}
}

func (h *Harness) perform(ctx context.Context, step FlowStep) ([]string, string, error) {
	args := step.Args
	limit, err := limitArg(args)
	if err != nil {
		return nil, "", err
	}

	switch step.Invoke {
	case ActionSetTone:
		tone, err := catalog.ParseSkinTone(args["tone"])
		if err != nil {
			return nil, "", err
		}
		return nil, OutcomeOK, h.session.SetPreferredTone(tone)

	case ActionPick:
		_, canonical, err := h.session.PickGlyph(ctx, args["glyph"])
		if canonical == nil {
			return nil, "", err
		}
		return []string{canonical.Glyph()}, OutcomeOK, err

	case ActionGroup:
		g, err := catalog.ParseGroup(args["group"])
		if err != nil {
			return nil, "", err
		}
		return glyphsOf(slices.Collect(h.session.CandidatesForGroup(g)), limit), OutcomeOK, nil

	case ActionSearch:
		return glyphsOf(slices.Collect(h.session.CandidatesForQuery(args["query"])), limit), OutcomeOK, nil

	case ActionType:
		h.evalLimit = limit
		h.box.SetText(args["text"])
		return nil, OutcomeScheduled, nil

	case ActionFlush:
		h.sched.Fire()
		return nil, OutcomeOK, nil

	case ActionVariants:
		variants, err := h.session.VariantsForGlyph(args["glyph"])
		if err != nil {
			return nil, "", err
		}
		return glyphsOf(variants, 0), OutcomeOK, nil

	case ActionFrequent:
		top, err := h.session.Frequent(ctx, limit)
		if err != nil {
			return nil, "", err
		}
		return glyphsOf(top, 0), OutcomeOK, nil

	case ActionClear:
		return nil, OutcomeOK, h.session.ClearRecents()

	case ActionReload:
		h.box.Close()
		if err := h.open(); err != nil {
			return nil, "", err
		}
		return glyphsOf(h.session.Recents(), 0), OutcomeOK, nil
	}
	return nil, "", fmt.Errorf("unknown action %q", step.Invoke)
}

func checkExpect(index int, step FlowStep, ev TraceEvent) string {
	exp := step.Expect
	if ev.Outcome != exp.Outcome {
		return fmt.Sprintf("flow[%d] %s: expected outcome %s, got %s %s",
			index, step.Invoke, exp.Outcome, ev.Outcome, ev.Error)
	}
	if exp.Glyphs != nil && !slices.Equal(exp.Glyphs, ev.Glyphs) {
		return fmt.Sprintf("flow[%d] %s: expected glyphs %v, got %v",
			index, step.Invoke, exp.Glyphs, ev.Glyphs)
	}
	return ""
}

func limitArg(args map[string]string) (int, error) {
	s, ok := args["limit"]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}

// glyphsOf lists the glyphs of records, at most limit of them when limit
// is positive.
func glyphsOf(records []*catalog.Record, limit int) []string {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Glyph()
	}
	return out
}
