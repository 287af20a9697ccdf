// Package harness runs scripted picker sessions and checks their outcome.
//
// A scenario drives one picker.Session through a sequence of user actions
// and records what the session returned at each step. The trace is compared
// against a golden file and the final persisted state is checked by
// assertions.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	max_unicode: "13.0"          # optional catalog restriction
//	setup:
//	  state: |                   # optional initial state file
//	    {"preferred_skin_tone": "Medium", "recent_emojis": ["🐶"]}
//	flow:
//	  - invoke: set_tone
//	    args: { tone: Medium }
//	  - invoke: pick
//	    args: { glyph: "👍🏽" }
//	    expect:
//	      outcome: ok
//	      glyphs: ["👍"]
//	assertions:
//	  - type: recents
//	    glyphs: ["👍", "🐶"]
//	  - type: tone
//	    tone: Medium
//
// # Actions
//
//   - set_tone {tone}: change the preferred tone
//   - pick {glyph}: pick a displayed glyph; yields its canonical glyph
//   - group {group, limit}: list a group in the preferred tone
//   - search {query, limit}: filter the catalog immediately
//   - type {text}: set the search box text; evaluation is deferred
//   - flush: let the debounce delay elapse; each evaluation is traced
//   - variants {glyph}: list the tone family of a glyph
//   - frequent {limit}: most picked emoji from the session history
//   - clear: empty the recents list
//   - reload: reopen the state file as a fresh process would
//
// # Assertion Types
//
//   - recents: the stored recents list, canonical glyphs in first-pick order
//   - tone: the stored preferred tone
//   - evaluations: the queries the search box evaluated, in order
//
// # Deterministic Testing
//
// State lives in a state.MemoryBackend, pick history in an in-memory SQLite
// database with sequential ids, and the debouncer runs on a
// testutil.ManualScheduler. Nothing depends on wall-clock time.
package harness
