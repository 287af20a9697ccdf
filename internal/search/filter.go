package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/sparklet/windot/internal/catalog"
)

// Matcher tests records against one query.
//
// A Matcher holds a stateful case folder and must not be shared between
// goroutines; Filter creates one per iteration.
type Matcher struct {
	folder cases.Caser
	needle string
}

// NewMatcher prepares query for matching.
func NewMatcher(query string) *Matcher {
	m := &Matcher{folder: cases.Fold()}
	m.needle = m.fold(query)
	return m
}

// Empty reports whether the query matches everything.
func (m *Matcher) Empty() bool { return m.needle == "" }

// Match reports whether the query occurs in r's name or in any shortcode.
func (m *Matcher) Match(r *catalog.Record) bool {
	if m.needle == "" {
		return true
	}
	if strings.Contains(m.fold(r.Name()), m.needle) {
		return true
	}
	for _, code := range r.Shortcodes() {
		if strings.Contains(m.fold(code), m.needle) {
			return true
		}
	}
	return false
}

func (m *Matcher) fold(s string) string {
	m.folder.Reset()
	return m.folder.String(norm.NFC.String(s))
}

// Filter yields the records of source that match query, in source order.
// An empty query yields source unchanged. Callers searching what is on
// screen should pass tone-resolved records, since variants carry their own
// names.
func Filter(source iter.Seq[*catalog.Record], query string) iter.Seq[*catalog.Record] {
	return func(yield func(*catalog.Record) bool) {
		m := NewMatcher(query)
		for r := range source {
			if !m.Match(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
