package picker

import (
	"slices"
	"time"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/search"
)

// SearchBox debounces one input field's text into candidate lists.
type SearchBox struct {
	session   *Session
	onResults func(query string, results []*catalog.Record)
	debouncer *search.Debouncer
}

// NewSearchBox returns a SearchBox that calls onResults with the candidates
// for the latest text once typing pauses for delay. A non-positive delay
// selects search.DefaultDelay.
func (s *Session) NewSearchBox(delay time.Duration, onResults func(query string, results []*catalog.Record), opts ...search.DebounceOption) *SearchBox {
	b := &SearchBox{session: s, onResults: onResults}
	b.debouncer = search.NewDebouncer(delay, b.evaluate, opts...)
	return b
}

// SetText records the field's current text.
func (b *SearchBox) SetText(text string) {
	b.debouncer.Submit(text)
}

// Close cancels any pending evaluation.
func (b *SearchBox) Close() {
	b.debouncer.Stop()
}

func (b *SearchBox) evaluate(query string) {
	b.onResults(query, slices.Collect(b.session.CandidatesForQuery(query)))
}
