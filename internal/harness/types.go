package harness

// TraceEvent records one step of a run and what the session returned.
type TraceEvent struct {
	Seq     int64             `json:"seq"`
	Action  string            `json:"action"`
	Args    map[string]string `json:"args,omitempty"`
	Outcome string            `json:"outcome"`
	Glyphs  []string          `json:"glyphs,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// FinalState is the persisted state after the last step.
type FinalState struct {
	Tone    string   `json:"preferred_skin_tone"`
	Recents []string `json:"recent_emojis"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses and assertions match.
	Pass bool `json:"pass"`

	// Trace contains every step and search evaluation in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the state as a fresh process would load it.
	Final FinalState `json:"final"`

	// Evaluations lists the queries the search box evaluated.
	Evaluations []string `json:"evaluations"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:        true,
		Trace:       []TraceEvent{},
		Errors:      []string{},
		Evaluations: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) addEvent(ev TraceEvent) int {
	r.Trace = append(r.Trace, ev)
	return len(r.Trace) - 1
}
