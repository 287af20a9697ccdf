package state

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/sparklet/windot/internal/catalog"
)

// State is a snapshot of the personalization state.
type State struct {
	PreferredTone catalog.SkinTone

	// Recents holds canonical records in first-pick order.
	Recents []*catalog.Record
}

// Store owns the personalization state and its persisted copy.
//
// Thread-safety: all methods are safe for concurrent use. Readers share a
// read lock; each mutation holds the write lock for its whole effect, so no
// reader observes a partially applied change. Saves are serialized so that
// the file always ends up holding the latest state.
type Store struct {
	path    string
	backend Backend
	catalog *catalog.Catalog
	logger  *slog.Logger

	mu    sync.RWMutex
	state State

	saveMu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithBackend replaces the filesystem backend.
func WithBackend(b Backend) Option {
	return func(s *Store) { s.backend = b }
}

// WithLogger sets the logger used for recoverable conditions. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func newStore(path string, cat *catalog.Catalog, opts []Option) *Store {
	s := &Store{
		path:    path,
		backend: FSBackend{},
		catalog: cat,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadOrCreate loads the state at path, resolving recents against cat.
// cat should be the full catalog: recents it does not contain are dropped
// and the next Save writes them out of the file. Narrower views belong to
// the reader of the store, not the store itself.
//
// When the file does not exist the default state (Default tone, no recents)
// is written immediately. An existing file that cannot be parsed yields a
// *CorruptStateError; filesystem failures yield a *StorageIOError. Neither is
// papered over.
func LoadOrCreate(path string, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	s := newStore(path, cat, opts)

	if err := s.backend.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, &StorageIOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}

	data, err := s.backend.Read(path)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("no state file, creating default", "path", path)
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, &StorageIOError{Op: "read", Path: path, Err: err}
	}

	st, err := decode(data, cat, s.logger)
	if err != nil {
		return nil, &CorruptStateError{Path: path, Err: err}
	}
	s.state = st
	s.logger.Debug("state loaded", "path", path, "tone", st.PreferredTone, "recents", len(st.Recents))
	return s, nil
}

// LoadOrRecover behaves like LoadOrCreate but recovers from a corrupt file:
// the unreadable contents are copied to "<path>.corrupt", a warning is
// logged and a fresh default state replaces the original. I/O errors are
// still returned.
func LoadOrRecover(path string, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	s, err := LoadOrCreate(path, cat, opts...)
	var corrupt *CorruptStateError
	if !errors.As(err, &corrupt) {
		return s, err
	}

	s = newStore(path, cat, opts)
	backup := path + ".corrupt"
	if data, readErr := s.backend.Read(path); readErr == nil {
		if writeErr := s.backend.Write(backup, data); writeErr != nil {
			return nil, &StorageIOError{Op: "write", Path: backup, Err: writeErr}
		}
	}
	s.logger.Warn("state file is corrupt, starting from defaults",
		"path", path, "backup", backup, "error", corrupt.Err)

	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the state file.
func (s *Store) Path() string { return s.path }

// Catalog returns the catalog recents are resolved against.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		PreferredTone: s.state.PreferredTone,
		Recents:       slices.Clone(s.state.Recents),
	}
}

// PreferredTone returns the current preferred tone.
func (s *Store) PreferredTone() catalog.SkinTone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.PreferredTone
}

// Recents returns a copy of the recents list.
func (s *Store) Recents() []*catalog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Recents)
}

// RecordPick appends the canonical identity of r to the recents list unless
// it is already there. It reports whether the list changed. Repeat picks do
// not change an entry's position.
func (s *Store) RecordPick(r *catalog.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.state.Recents)
	s.state.Recents = appendUnique(s.state.Recents, r.Base())
	return len(s.state.Recents) != before
}

// SetPreferredTone replaces the preferred tone. Recents are unaffected. A
// tone outside catalog.Tones is rejected and leaves the state unchanged.
func (s *Store) SetPreferredTone(t catalog.SkinTone) error {
	if !t.Valid() {
		return fmt.Errorf("invalid skin tone %d", uint8(t))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PreferredTone = t
	return nil
}

// ClearRecents empties the recents list.
func (s *Store) ClearRecents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Recents = nil
}

// Save writes the current state to the backend, replacing the previous file.
// A failure is returned as a *StorageIOError and leaves the in-memory state
// untouched.
func (s *Store) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	data, err := encode(s.state)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err := s.backend.Write(s.path, data); err != nil {
		return &StorageIOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

func appendUnique(recents []*catalog.Record, r *catalog.Record) []*catalog.Record {
	if slices.ContainsFunc(recents, func(x *catalog.Record) bool {
		return x.Glyph() == r.Glyph()
	}) {
		return recents
	}
	return append(recents, r)
}
