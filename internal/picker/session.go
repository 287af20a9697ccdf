package picker

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/search"
	"github.com/sparklet/windot/internal/state"
	"github.com/sparklet/windot/internal/store"
)

// Clipboard receives the text of a picked emoji.
type Clipboard interface {
	SetText(text string) error
}

// History records pick events beyond the recents list.
// *store.Store implements it.
type History interface {
	Append(ctx context.Context, displayed *catalog.Record) (store.Pick, error)
	TopPicks(ctx context.Context, limit int) ([]store.GlyphCount, error)
}

// Session is the picker's query and pick surface.
//
// Thread-safety: Session is safe for concurrent use; all mutable state lives
// in the injected state.Store.
type Session struct {
	catalog *catalog.Catalog
	state   *state.Store
	history History
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHistory records every pick in h.
func WithHistory(h History) Option {
	return func(s *Session) { s.history = h }
}

// WithCatalog narrows what the session shows and accepts to c, which must
// share its records with the store's catalog, as one returned by UpTo does.
// Recents outside c stay in the state file; they are only hidden.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// WithLogger sets the session logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session over st. Unless WithCatalog is given it uses the
// catalog st resolves against.
func New(st *state.Store, opts ...Option) *Session {
	s := &Session{
		catalog: st.Catalog(),
		state:   st,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// PreferredTone returns the tone candidates are resolved in.
func (s *Session) PreferredTone() catalog.SkinTone { return s.state.PreferredTone() }

// CandidatesForGroup yields the records of g in the preferred tone. The
// tone is read once, when iteration starts.
func (s *Session) CandidatesForGroup(g catalog.Group) iter.Seq[*catalog.Record] {
	return func(yield func(*catalog.Record) bool) {
		for r := range catalog.ResolveAll(s.catalog.ByGroup(g), s.state.PreferredTone()) {
			if !yield(r) {
				return
			}
		}
	}
}

// CandidatesForQuery yields the tone-resolved records matching query.
func (s *Session) CandidatesForQuery(query string) iter.Seq[*catalog.Record] {
	return func(yield func(*catalog.Record) bool) {
		resolved := catalog.ResolveAll(s.catalog.All(), s.state.PreferredTone())
		for r := range search.Filter(resolved, query) {
			if !yield(r) {
				return
			}
		}
	}
}

// Recents returns the recents list shown in the preferred tone. Entries the
// session's catalog does not contain are left out.
func (s *Session) Recents() []*catalog.Record {
	tone := s.state.PreferredTone()
	stored := s.state.Recents()
	recents := make([]*catalog.Record, 0, len(stored))
	for _, r := range stored {
		if _, ok := s.catalog.Lookup(r.Glyph()); !ok {
			continue
		}
		recents = append(recents, catalog.Resolve(r, tone))
	}
	return recents
}

// VariantsFor returns every tone of the displayed record's emoji, base
// first, or nil when the emoji has no variants.
func (s *Session) VariantsFor(displayed *catalog.Record) ([]*catalog.Record, error) {
	base, err := s.catalog.CanonicalIdentity(displayed)
	if err != nil {
		return nil, err
	}
	if !base.HasVariants() {
		return nil, nil
	}
	return catalog.ExpandWithVariants(base), nil
}

// VariantsForGlyph is VariantsFor for a glyph string.
func (s *Session) VariantsForGlyph(glyph string) ([]*catalog.Record, error) {
	r, ok := s.catalog.Lookup(glyph)
	if !ok {
		return nil, &catalog.UnresolvedIdentityError{Glyph: glyph}
	}
	return s.VariantsFor(r)
}

// Pick records the displayed record as used and returns its canonical
// identity.
//
// The recents change is applied in memory first and then saved. A save
// failure is returned together with the canonical record: the pick still
// counts, but the caller must surface the error. History write failures are
// logged, never returned.
func (s *Session) Pick(ctx context.Context, displayed *catalog.Record) (*catalog.Record, error) {
	base, err := s.catalog.CanonicalIdentity(displayed)
	if err != nil {
		return nil, err
	}

	if s.state.RecordPick(base) {
		s.logger.Debug("added to recents", "glyph", base.Glyph())
	}

	if s.history != nil {
		if _, err := s.history.Append(ctx, displayed); err != nil {
			s.logger.Warn("failed to record pick history", "glyph", displayed.Glyph(), "error", err)
		}
	}

	if err := s.state.Save(); err != nil {
		return base, fmt.Errorf("save after pick: %w", err)
	}
	return base, nil
}

// PickGlyph resolves glyph and picks it. It returns the displayed record the
// glyph names along with the canonical one.
func (s *Session) PickGlyph(ctx context.Context, glyph string) (displayed, canonical *catalog.Record, err error) {
	displayed, ok := s.catalog.Lookup(glyph)
	if !ok {
		return nil, nil, &catalog.UnresolvedIdentityError{Glyph: glyph}
	}
	canonical, err = s.Pick(ctx, displayed)
	return displayed, canonical, err
}

// SetPreferredTone changes the preference and saves it. The new tone is in
// effect even when the save fails.
func (s *Session) SetPreferredTone(t catalog.SkinTone) error {
	if err := s.state.SetPreferredTone(t); err != nil {
		return err
	}
	if err := s.state.Save(); err != nil {
		return fmt.Errorf("save preferred tone: %w", err)
	}
	return nil
}

// ClearRecents empties the recents list and saves.
func (s *Session) ClearRecents() error {
	s.state.ClearRecents()
	if err := s.state.Save(); err != nil {
		return fmt.Errorf("save cleared recents: %w", err)
	}
	return nil
}

// Frequent returns up to limit emoji ordered by how often they were picked,
// in the preferred tone. Without a history it returns nil.
func (s *Session) Frequent(ctx context.Context, limit int) ([]*catalog.Record, error) {
	if s.history == nil {
		return nil, nil
	}
	counts, err := s.history.TopPicks(ctx, limit)
	if err != nil {
		return nil, err
	}

	tone := s.state.PreferredTone()
	out := make([]*catalog.Record, 0, len(counts))
	for _, c := range counts {
		base, err := s.catalog.Identify(c.BaseGlyph)
		if err != nil {
			// History may outlive a catalog restriction.
			continue
		}
		out = append(out, catalog.Resolve(base, tone))
	}
	return slices.Clip(out), nil
}
