package catalog

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	c := Builtin()
	require.NotNil(t, c)
	assert.Greater(t, c.Len(), 1800, "every fully-qualified emoji of Unicode 15.1")
	assert.Same(t, c, Builtin(), "default catalog is decoded once")

	toned := 0
	for r := range c.All() {
		if r.HasVariants() {
			toned++
		}
	}
	assert.Greater(t, toned, 300)

	identities := slices.Collect(c.Identities())
	assert.Len(t, identities, c.Len()+toned*5)
}

func TestDefault_SpansEmojiVersions(t *testing.T) {
	c := Builtin()
	tests := []struct {
		glyph string
		name  string
		since string
	}{
		{"😃", "grinning face with big eyes", "0.6"},
		{"🕴️", "person in suit levitating", "0.7"},
		{"🧑‍💻", "technologist", "12.1"},
		{"🫠", "melting face", "14.0"},
		{"🫨", "shaking face", "15.0"},
		{"🍋‍🟩", "lime", "15.1"},
		{"🇺🇦", "flag: Ukraine", "2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := c.Identify(tt.glyph)
			require.NoError(t, err)
			assert.Equal(t, tt.name, r.Name())
			assert.Equal(t, tt.since, r.Since())
		})
	}
}

func TestDefault_IDsFollowIdentityOrder(t *testing.T) {
	i := 0
	for r := range Builtin().Identities() {
		require.Equal(t, i, r.ID(), "record %s", r.Glyph())
		i++
	}
}

func TestAll_IsRestartable(t *testing.T) {
	c := Builtin()
	first := slices.Collect(c.All())
	second := slices.Collect(c.All())
	assert.Equal(t, first, second)
	assert.Equal(t, "😀", first[0].Glyph())
	assert.Equal(t, "flag: Wales", first[len(first)-1].Name())
}

func TestAll_StopsEarly(t *testing.T) {
	n := 0
	for range Builtin().All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestByGroup(t *testing.T) {
	c := Builtin()
	total := 0
	for _, g := range Groups() {
		records := slices.Collect(c.ByGroup(g))
		require.NotEmpty(t, records, g.String())
		for _, r := range records {
			assert.Equal(t, g, r.Group())
			assert.False(t, r.IsVariant())
		}
		total += len(records)
	}
	assert.Equal(t, c.Len(), total, "groups partition the catalog")

	people := slices.Collect(c.ByGroup(PeopleAndBody))
	assert.Equal(t, "👋", people[0].Glyph())
}

func TestByGroup_PreservesDefinitionOrder(t *testing.T) {
	c := Builtin()
	var fromAll []*Record
	for r := range c.All() {
		if r.Group() == AnimalsAndNature {
			fromAll = append(fromAll, r)
		}
	}
	assert.Equal(t, fromAll, slices.Collect(c.ByGroup(AnimalsAndNature)))
}

func TestVariantFamily(t *testing.T) {
	thumbs, err := Builtin().Identify("👍")
	require.NoError(t, err)
	require.True(t, thumbs.HasVariants())

	family := thumbs.Family()
	require.Len(t, family, 6)
	assert.Same(t, thumbs, family[Default])

	want := []string{"👍", "👍🏻", "👍🏼", "👍🏽", "👍🏾", "👍🏿"}
	for i, r := range family {
		assert.Equal(t, want[i], r.Glyph())
		assert.Equal(t, SkinTone(i), r.Tone())
		assert.Same(t, thumbs, r.Base())
	}
	assert.Equal(t, "thumbs up: medium skin tone", family[Medium].Name())
	assert.Equal(t, thumbs.Shortcodes(), family[Medium].Shortcodes())
}

func TestVariantGlyphs_DropPresentationSelector(t *testing.T) {
	c := Builtin()

	up, err := c.Identify("☝️")
	require.NoError(t, err)
	v, ok := up.Variant(Dark)
	require.True(t, ok)
	assert.Equal(t, "☝🏿", v.Glyph())

	runner, err := c.Identify("🏃‍♀️")
	require.NoError(t, err)
	v, ok = runner.Variant(Medium)
	require.True(t, ok)
	assert.Equal(t, "🏃🏽‍♀️", v.Glyph())

	dev, err := c.Identify("🧑‍💻")
	require.NoError(t, err)
	v, ok = dev.Variant(Light)
	require.True(t, ok)
	assert.Equal(t, "🧑🏻‍💻", v.Glyph())
}

func TestMultiPersonEmojiHaveNoFamily(t *testing.T) {
	c := Builtin()
	for _, glyph := range []string{"🤝", "👫", "👪"} {
		r, err := c.Identify(glyph)
		require.NoError(t, err)
		assert.False(t, r.HasVariants(), glyph)
		assert.Same(t, r, Resolve(r, Medium), glyph)
	}
}

func TestIdentify(t *testing.T) {
	c := Builtin()

	t.Run("toned glyph resolves to base", func(t *testing.T) {
		r, err := c.Identify("👍🏽")
		require.NoError(t, err)
		assert.Equal(t, "👍", r.Glyph())
		assert.False(t, r.IsVariant())
	})

	t.Run("presentation selector is optional", func(t *testing.T) {
		with, err := c.Identify("❤️")
		require.NoError(t, err)
		without, err := c.Identify("❤")
		require.NoError(t, err)
		assert.Same(t, with, without)
		assert.Equal(t, "red heart", with.Name())
	})

	t.Run("unknown glyph", func(t *testing.T) {
		// Face with bags under eyes arrived in Unicode 16.0.
		_, err := c.Identify("\U0001FAE9")
		require.Error(t, err)
		assert.True(t, IsUnresolved(err))
		assert.Contains(t, err.Error(), "\U0001FAE9")
	})
}

func TestCanonicalIdentity_EveryIdentityResolvesToItsBase(t *testing.T) {
	c := Builtin()
	for r := range c.Identities() {
		got, ok := c.Lookup(r.Glyph())
		require.True(t, ok, r.Glyph())
		require.Same(t, r, got, "exactly one identity per glyph")

		base, err := c.CanonicalIdentity(r)
		require.NoError(t, err)
		assert.Same(t, r.Base(), base)
	}
}

func TestCanonicalIdentity_Nil(t *testing.T) {
	_, err := Builtin().CanonicalIdentity(nil)
	assert.True(t, IsUnresolved(err))
}

func TestUpTo(t *testing.T) {
	c := Builtin()

	restricted, err := c.UpTo("12.1")
	require.NoError(t, err)
	assert.Less(t, restricted.Len(), c.Len())

	for r := range restricted.All() {
		assert.NotContains(t, []string{"13.0", "13.1", "14.0", "15.0", "15.1"}, r.Since(), r.Glyph())
	}

	_, err = restricted.Identify("🫡")
	assert.True(t, IsUnresolved(err), "14.0 emoji is excluded")
	_, err = restricted.Identify("🤌🏽")
	assert.True(t, IsUnresolved(err), "variants follow their base")

	dev, err := restricted.Identify("🧑🏾‍💻")
	require.NoError(t, err)
	full, err := c.Identify("🧑‍💻")
	require.NoError(t, err)
	assert.Same(t, full, dev, "records are shared")

	same, err := c.UpTo("")
	require.NoError(t, err)
	assert.Same(t, c, same)

	_, err = c.UpTo("thirteen")
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax",
			src:     `groups: [`,
			wantErr: "cue",
		},
		{
			name:    "missing groups",
			src:     `emojis: []`,
			wantErr: "groups is required",
		},
		{
			name:    "unknown group",
			src:     `groups: [{group: "Food", emojis: []}]`,
			wantErr: `unknown group "Food"`,
		},
		{
			name:    "non-concrete field",
			src:     `groups: [{group: "Flags", emojis: [{glyph: string, name: "x", since: "1.0"}]}]`,
			wantErr: "cue",
		},
		{
			name: "duplicate glyph",
			src: `groups: [{group: "Symbols", emojis: [
				{glyph: "✅", name: "check", since: "1.0"},
				{glyph: "✅", name: "check again", since: "1.0"},
			]}]`,
			wantErr: "collides",
		},
		{
			name: "variant collides with base",
			src: `groups: [{group: "PeopleAndBody", emojis: [
				{glyph: "👍", name: "thumbs up", since: "1.0", tones: true},
				{glyph: "👍🏽", name: "impostor", since: "1.0"},
			]}]`,
			wantErr: "collides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var le *LoadError
			assert.ErrorAs(t, err, &le)
		})
	}
}

func TestLoad_Minimal(t *testing.T) {
	c, err := Load([]byte(`groups: [
		{group: "PeopleAndBody", emojis: [{glyph: "👋", name: "waving hand", codes: ["wave"], since: "1.0", tones: true}]},
		{group: "Flags", emojis: [{glyph: "🏁", name: "chequered flag", codes: [], since: "1.0", tones: false}]},
	]`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Len(t, slices.Collect(c.Identities()), 7)
	assert.Empty(t, slices.Collect(c.ByGroup(Objects)))
}
