package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted picker session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// MaxUnicode restricts the catalog to emoji introduced in this Unicode
	// Emoji version or earlier. Empty means the full catalog.
	MaxUnicode string `yaml:"max_unicode,omitempty"`

	// Setup prepares persisted state before the session starts.
	Setup Setup `yaml:"setup,omitempty"`

	// Flow contains the user actions, executed in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final persisted state and search evaluations.
	Assertions []Assertion `yaml:"assertions"`
}

// Setup describes the state present before the session starts.
type Setup struct {
	// State is the initial content of the state file. Empty means a fresh
	// install.
	State string `yaml:"state,omitempty"`

	// Recover loads the state the way the CLI does, replacing a corrupt
	// file with defaults instead of failing.
	Recover bool `yaml:"recover,omitempty"`
}

// FlowStep is one user action.
type FlowStep struct {
	// Invoke is the action name (e.g. "pick").
	Invoke string `yaml:"invoke"`

	// Args contains the action arguments.
	Args map[string]string `yaml:"args,omitempty"`

	// Expect specifies the expected step outcome. If nil, no validation is
	// performed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Outcome is "ok" or "error".
	Outcome string `yaml:"outcome"`

	// Glyphs is the exact glyph list the step must yield. If nil, only the
	// outcome is validated.
	Glyphs []string `yaml:"glyphs,omitempty"`
}

// Assertion validates the final state of a run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "recents": stored recents equal Glyphs
	// - "tone": stored preferred tone equals Tone
	// - "evaluations": evaluated search queries equal Queries
	Type string `yaml:"type"`

	Glyphs  []string `yaml:"glyphs,omitempty"`
	Tone    string   `yaml:"tone,omitempty"`
	Queries []string `yaml:"queries,omitempty"`
}

// Assertion type constants.
const (
	AssertRecents     = "recents"
	AssertTone        = "tone"
	AssertEvaluations = "evaluations"
)

// Step outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeScheduled = "scheduled"
)

// requiredArgs lists the arguments each action needs.
var requiredArgs = map[string][]string{
	ActionSetTone:  {"tone"},
	ActionPick:     {"glyph"},
	ActionGroup:    {"group"},
	ActionSearch:   {"query"},
	ActionType:     {"text"},
	ActionFlush:    nil,
	ActionVariants: {"glyph"},
	ActionFrequent: nil,
	ActionClear:    nil,
	ActionReload:   nil,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict fields catch typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, step := range s.Flow {
		if step.Invoke == "" {
			return fmt.Errorf("flow[%d]: invoke is required", i)
		}
		required, known := requiredArgs[step.Invoke]
		if !known {
			return fmt.Errorf("flow[%d]: unknown action %q", i, step.Invoke)
		}
		for _, arg := range required {
			if _, ok := step.Args[arg]; !ok {
				return fmt.Errorf("flow[%d]: %s requires arg %q", i, step.Invoke, arg)
			}
		}
		if step.Expect != nil {
			switch step.Expect.Outcome {
			case OutcomeOK, OutcomeError, OutcomeScheduled:
			case "":
				return fmt.Errorf("flow[%d].expect: outcome is required", i)
			default:
				return fmt.Errorf("flow[%d].expect: unknown outcome %q", i, step.Expect.Outcome)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRecents:
		if a.Glyphs == nil {
			return fmt.Errorf("assertions[%d]: glyphs is required for recents (use [] for none)", index)
		}
	case AssertTone:
		if a.Tone == "" {
			return fmt.Errorf("assertions[%d]: tone is required for tone", index)
		}
	case AssertEvaluations:
		if a.Queries == nil {
			return fmt.Errorf("assertions[%d]: queries is required for evaluations (use [] for none)", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
