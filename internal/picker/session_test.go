package picker

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/search"
	"github.com/sparklet/windot/internal/state"
	"github.com/sparklet/windot/internal/store"
	"github.com/sparklet/windot/internal/testutil"
)

const statePath = "/data/" + state.FileName

func newTestSession(t *testing.T, opts ...Option) (*Session, *state.MemoryBackend) {
	t.Helper()
	b := state.NewMemoryBackend()
	st, err := state.LoadOrCreate(statePath, catalog.Builtin(), state.WithBackend(b))
	require.NoError(t, err)
	return New(st, opts...), b
}

func lookup(t *testing.T, glyph string) *catalog.Record {
	t.Helper()
	r, ok := catalog.Builtin().Lookup(glyph)
	require.True(t, ok, "glyph %s", glyph)
	return r
}

func glyphs(records []*catalog.Record) string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Glyph()
	}
	return strings.Join(out, " ")
}

func firstN(seq func(func(*catalog.Record) bool), n int) []*catalog.Record {
	var out []*catalog.Record
	for r := range seq {
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestCandidatesForGroup_ResolvesPreferredTone(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPreferredTone(catalog.Medium))

	people := firstN(s.CandidatesForGroup(catalog.PeopleAndBody), 3)
	assert.Equal(t, "👋🏽 🤚🏽 🖐🏽", glyphs(people))

	smileys := firstN(s.CandidatesForGroup(catalog.SmileysAndEmotion), 3)
	assert.Equal(t, "😀 😃 😄", glyphs(smileys), "emoji without variants stay base")
}

func TestCandidatesForGroup_ToneReadAtIterationStart(t *testing.T) {
	s, _ := newTestSession(t)
	seq := s.CandidatesForGroup(catalog.PeopleAndBody)

	assert.Equal(t, "👋", glyphs(firstN(seq, 1)))
	require.NoError(t, s.SetPreferredTone(catalog.Dark))
	assert.Equal(t, "👋🏿", glyphs(firstN(seq, 1)))
}

func TestCandidatesForGroup_SizeMatchesCatalog(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPreferredTone(catalog.Light))

	for _, g := range catalog.Groups() {
		want := slices.Collect(s.Catalog().ByGroup(g))
		got := slices.Collect(s.CandidatesForGroup(g))
		require.Len(t, got, len(want), "group %s", g)
		for i := range got {
			assert.Same(t, want[i], got[i].Base())
		}
	}
}

func TestCandidatesForQuery(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetPreferredTone(catalog.Medium))

	assert.Equal(t, "👍🏽 👎🏽", glyphs(slices.Collect(s.CandidatesForQuery("thumbs"))))
	assert.Empty(t, slices.Collect(s.CandidatesForQuery("dogs")))
	assert.Equal(t, s.Catalog().Len(), len(slices.Collect(s.CandidatesForQuery(""))))
}

func TestPick_RecordsCanonicalIdentity(t *testing.T) {
	s, b := newTestSession(t)
	require.NoError(t, s.SetPreferredTone(catalog.Medium))

	base, err := s.Pick(context.Background(), lookup(t, "👍🏽"))
	require.NoError(t, err)
	assert.Equal(t, "👍", base.Glyph())

	assert.Equal(t, "👍", glyphs(s.state.Recents()))
	assert.Equal(t, "👍🏽", glyphs(s.Recents()), "recents are shown in the preferred tone")

	data, err := b.Read(statePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"preferred_skin_tone":"Medium","recent_emojis":["👍"]}`, string(data))
}

func TestPick_RepeatKeepsFirstPosition(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	for _, g := range []string{"😀", "🐶", "👍🏿", "🐶"} {
		_, err := s.Pick(ctx, lookup(t, g))
		require.NoError(t, err)
	}
	assert.Equal(t, "😀 🐶 👍", glyphs(s.Recents()))
}

func TestPick_VariantAndBaseShareOneEntry(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	_, err := s.Pick(ctx, lookup(t, "👋"))
	require.NoError(t, err)
	_, err = s.Pick(ctx, lookup(t, "👋🏻"))
	require.NoError(t, err)

	assert.Equal(t, "👋", glyphs(s.Recents()))
}

func TestPick_Unresolved(t *testing.T) {
	s, b := newTestSession(t)
	writes := b.Writes()

	_, err := s.Pick(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, catalog.IsUnresolved(err))

	_, _, err = s.PickGlyph(context.Background(), "not an emoji")
	require.Error(t, err)
	assert.True(t, catalog.IsUnresolved(err))

	assert.Empty(t, s.Recents())
	assert.Equal(t, writes, b.Writes(), "nothing saved")
}

func TestPick_SaveFailureKeepsChange(t *testing.T) {
	s, b := newTestSession(t)
	b.FailWrites(errors.New("disk full"))

	base, err := s.Pick(context.Background(), lookup(t, "🐶"))
	require.Error(t, err)
	assert.True(t, state.IsStorageIO(err))
	require.NotNil(t, base)
	assert.Equal(t, "🐶", base.Glyph())
	assert.Equal(t, "🐶", glyphs(s.Recents()))
}

func TestPickGlyph(t *testing.T) {
	s, _ := newTestSession(t)

	displayed, canonical, err := s.PickGlyph(context.Background(), "✌🏾")
	require.NoError(t, err)
	assert.Equal(t, "✌🏾", displayed.Glyph())
	assert.Equal(t, "✌️", canonical.Glyph())
}

func TestVariantsFor(t *testing.T) {
	s, _ := newTestSession(t)

	variants, err := s.VariantsFor(lookup(t, "👍🏽"))
	require.NoError(t, err)
	assert.Equal(t, "👍 👍🏻 👍🏼 👍🏽 👍🏾 👍🏿", glyphs(variants))

	variants, err = s.VariantsFor(lookup(t, "😀"))
	require.NoError(t, err)
	assert.Empty(t, variants)

	variants, err = s.VariantsForGlyph("🤝")
	require.NoError(t, err)
	assert.Empty(t, variants, "multi-person emoji have no variants")

	_, err = s.VariantsForGlyph("??")
	assert.True(t, catalog.IsUnresolved(err))
}

func TestSetPreferredTone(t *testing.T) {
	s, b := newTestSession(t)

	require.NoError(t, s.SetPreferredTone(catalog.MediumDark))
	assert.Equal(t, catalog.MediumDark, s.PreferredTone())

	assert.Error(t, s.SetPreferredTone(catalog.SkinTone(42)))
	assert.Equal(t, catalog.MediumDark, s.PreferredTone())

	b.FailWrites(errors.New("read-only"))
	err := s.SetPreferredTone(catalog.Light)
	require.Error(t, err)
	assert.True(t, state.IsStorageIO(err))
	assert.Equal(t, catalog.Light, s.PreferredTone(), "tone applies despite the save failure")
}

func TestWithCatalog_HidesNewerRecentsWithoutDroppingThem(t *testing.T) {
	ctx := context.Background()
	full, b := newTestSession(t)
	_, err := full.Pick(ctx, lookup(t, "🫡"))
	require.NoError(t, err)

	old, err := catalog.Builtin().UpTo("12.0")
	require.NoError(t, err)
	st, err := state.LoadOrCreate(statePath, catalog.Builtin(), state.WithBackend(b))
	require.NoError(t, err)
	restricted := New(st, WithCatalog(old))

	assert.Empty(t, restricted.Recents(), "14.0 emoji are hidden below 14.0")
	assert.Empty(t, slices.Collect(restricted.CandidatesForQuery("saluting")))
	_, _, err = restricted.PickGlyph(ctx, "🫡")
	assert.True(t, catalog.IsUnresolved(err))

	_, err = restricted.Pick(ctx, lookup(t, "👍🏽"))
	require.NoError(t, err)
	assert.Equal(t, "👍", glyphs(restricted.Recents()))

	reloaded, err := state.LoadOrCreate(statePath, catalog.Builtin(), state.WithBackend(b))
	require.NoError(t, err)
	assert.Equal(t, "🫡 👍", glyphs(New(reloaded).Recents()), "saving in a narrow view keeps newer recents")
}

func TestClearRecents(t *testing.T) {
	s, b := newTestSession(t)
	_, err := s.Pick(context.Background(), lookup(t, "🐶"))
	require.NoError(t, err)

	require.NoError(t, s.ClearRecents())
	assert.Empty(t, s.Recents())

	data, err := b.Read(statePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"preferred_skin_tone":"Default","recent_emojis":[]}`, string(data))
}

func TestFrequent_WithoutHistory(t *testing.T) {
	s, _ := newTestSession(t)
	got, err := s.Frequent(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFrequent(t *testing.T) {
	h, err := store.Open(filepath.Join(t.TempDir(), store.FileName),
		store.WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })

	s, _ := newTestSession(t, WithHistory(h))
	ctx := context.Background()
	for _, g := range []string{"🐶", "👍🏽", "👍", "😀", "🐶", "👍🏿"} {
		_, err := s.Pick(ctx, lookup(t, g))
		require.NoError(t, err)
	}
	require.NoError(t, s.SetPreferredTone(catalog.Light))

	top, err := s.Frequent(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "👍🏻 🐶", glyphs(top))

	picks, err := h.ReadPicks(ctx, 0)
	require.NoError(t, err)
	require.Len(t, picks, 6)
	assert.Equal(t, "👍🏿", picks[0].Glyph, "history keeps the displayed glyph")
	assert.Equal(t, "👍", picks[0].BaseGlyph)
}

type failingHistory struct{}

func (failingHistory) Append(context.Context, *catalog.Record) (store.Pick, error) {
	return store.Pick{}, errors.New("database is locked")
}

func (failingHistory) TopPicks(context.Context, int) ([]store.GlyphCount, error) {
	return nil, errors.New("database is locked")
}

func TestPick_HistoryFailureIsNotFatal(t *testing.T) {
	s, _ := newTestSession(t, WithHistory(failingHistory{}))

	_, err := s.Pick(context.Background(), lookup(t, "🐶"))
	require.NoError(t, err)
	assert.Equal(t, "🐶", glyphs(s.Recents()))

	_, err = s.Frequent(context.Background(), 3)
	assert.Error(t, err)
}

func TestSearchBox_DebouncesToLatestText(t *testing.T) {
	s, _ := newTestSession(t)
	sched := testutil.NewManualScheduler()

	var (
		mu      sync.Mutex
		queries []string
		results [][]*catalog.Record
	)
	box := s.NewSearchBox(0, func(q string, rs []*catalog.Record) {
		mu.Lock()
		defer mu.Unlock()
		queries = append(queries, q)
		results = append(results, rs)
	}, search.WithScheduler(sched.AfterFunc))

	box.SetText("dog")
	box.SetText("dogs")
	assert.Equal(t, 1, sched.Fire())

	require.Equal(t, []string{"dogs"}, queries)
	assert.Empty(t, results[0])
	assert.Equal(t, search.DefaultDelay, sched.Delays()[0])

	box.SetText("dog")
	sched.Fire()
	require.Len(t, results, 2)
	assert.Equal(t, "🐶 🐕 🦮 🐕‍🦺 🌭", glyphs(results[1]))
}

func TestSearchBox_Close(t *testing.T) {
	s, _ := newTestSession(t)
	sched := testutil.NewManualScheduler()

	called := false
	box := s.NewSearchBox(0, func(string, []*catalog.Record) { called = true },
		search.WithScheduler(sched.AfterFunc))

	box.SetText("cat")
	box.Close()
	assert.Equal(t, 0, sched.Fire())
	assert.False(t, called)
}
