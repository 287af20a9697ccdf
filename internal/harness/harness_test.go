package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario(flow []FlowStep, assertions ...Assertion) *Scenario {
	return &Scenario{
		Name:        "inline",
		Description: "inline scenario",
		Flow:        flow,
		Assertions:  assertions,
	}
}

func TestRun_FreshInstall(t *testing.T) {
	result, err := Run(scenario([]FlowStep{{Invoke: ActionClear}}))
	require.NoError(t, err)

	assert.True(t, result.Pass, result.Errors)
	assert.Equal(t, FinalState{Tone: "Default", Recents: []string{}}, result.Final)
	require.Len(t, result.Trace, 1)
	assert.Equal(t, int64(1), result.Trace[0].Seq)
	assert.Equal(t, OutcomeOK, result.Trace[0].Outcome)
}

func TestRun_ExpectMismatchFails(t *testing.T) {
	result, err := Run(scenario([]FlowStep{{
		Invoke: ActionPick,
		Args:   map[string]string{"glyph": "👍🏽"},
		Expect: &ExpectClause{Outcome: OutcomeOK, Glyphs: []string{"👍🏽"}},
	}}))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "flow[0] pick: expected glyphs")
}

func TestRun_StepErrorIsTraced(t *testing.T) {
	result, err := Run(scenario([]FlowStep{
		{Invoke: ActionSetTone, Args: map[string]string{"tone": "purple"}},
		{Invoke: ActionGroup, Args: map[string]string{"group": "Smileys", "limit": "2"}},
		{Invoke: ActionSearch, Args: map[string]string{"query": "cat", "limit": "-1"}},
	}))
	require.NoError(t, err)

	assert.True(t, result.Pass, "steps without expect do not fail the run")
	for _, ev := range result.Trace {
		assert.Equal(t, OutcomeError, ev.Outcome, ev.Action)
		assert.NotEmpty(t, ev.Error, ev.Action)
	}
}

func TestRun_AssertionFailure(t *testing.T) {
	result, err := Run(scenario(
		[]FlowStep{{Invoke: ActionPick, Args: map[string]string{"glyph": "🐶"}}},
		Assertion{Type: AssertRecents, Glyphs: []string{"🐱"}},
		Assertion{Type: AssertTone, Tone: "Dark"},
		Assertion{Type: AssertEvaluations, Queries: []string{"dog"}},
	))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Assertion failed: recents")
	assert.Contains(t, result.Errors[0], "[🐶]")
	assert.Contains(t, result.Errors[1], "Assertion failed: tone")
	assert.Contains(t, result.Errors[2], "Assertion failed: evaluations")
}

func TestRun_CorruptStateWithoutRecover(t *testing.T) {
	s := scenario([]FlowStep{{Invoke: ActionClear}})
	s.Setup.State = "{not json"

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load state")
}

func TestRun_InvalidMaxUnicode(t *testing.T) {
	s := scenario([]FlowStep{{Invoke: ActionClear}})
	s.MaxUnicode = "fourteen"

	_, err := Run(s)
	require.Error(t, err)
}

func TestRun_TypeWithoutFlushNeverEvaluates(t *testing.T) {
	result, err := Run(scenario(
		[]FlowStep{
			{Invoke: ActionType, Args: map[string]string{"text": "dog"}},
			{Invoke: ActionReload},
			{Invoke: ActionFlush},
		},
		Assertion{Type: AssertEvaluations, Queries: []string{}},
	))
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)
}

func TestRun_Deterministic(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/pick_records_canonical.yaml")
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, first.Trace, second.Trace)
}
