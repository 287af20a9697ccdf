package harness

import (
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %s %v -> %s %v\n", event.Seq, event.Action, event.Args, event.Outcome, event.Glyphs)
	}

	return buf.String()
}

func assertRecents(result *Result, a Assertion) error {
	if slices.Equal(result.Final.Recents, a.Glyphs) {
		return nil
	}
	return &AssertionError{
		Type:     AssertRecents,
		Expected: fmt.Sprintf("recents %v", a.Glyphs),
		Actual:   fmt.Sprintf("recents %v", result.Final.Recents),
		Trace:    result.Trace,
	}
}

func assertTone(result *Result, a Assertion) error {
	if result.Final.Tone == a.Tone {
		return nil
	}
	return &AssertionError{
		Type:     AssertTone,
		Expected: fmt.Sprintf("tone %s", a.Tone),
		Actual:   fmt.Sprintf("tone %s", result.Final.Tone),
		Trace:    result.Trace,
	}
}

func assertEvaluations(result *Result, a Assertion) error {
	if slices.Equal(result.Evaluations, a.Queries) {
		return nil
	}
	return &AssertionError{
		Type:     AssertEvaluations,
		Expected: fmt.Sprintf("evaluated queries %q", a.Queries),
		Actual:   fmt.Sprintf("evaluated queries %q", result.Evaluations),
		Trace:    result.Trace,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertRecents:
			err = assertRecents(result, assertion)
		case AssertTone:
			err = assertTone(result, assertion)
		case AssertEvaluations:
			err = assertEvaluations(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
