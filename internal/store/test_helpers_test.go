package store

import (
	"path/filepath"
	"testing"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/testutil"
)

// createTestStore creates a new store in a temp dir with sequential ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func lookup(t *testing.T, glyph string) *catalog.Record {
	t.Helper()
	r, ok := catalog.Builtin().Lookup(glyph)
	if !ok {
		t.Fatalf("glyph %s not in catalog", glyph)
	}
	return r
}
