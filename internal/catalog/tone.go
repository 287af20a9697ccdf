package catalog

import (
	"fmt"
	"strings"
)

// SkinTone is a single-person Fitzpatrick skin tone.
//
// Multi-person combinations are not representable; emoji that would need
// them have no variant family and always resolve to their base.
type SkinTone uint8

const (
	Default SkinTone = iota
	Light
	MediumLight
	Medium
	MediumDark
	Dark
)

// Tones lists every SkinTone in enumeration order.
var Tones = []SkinTone{Default, Light, MediumLight, Medium, MediumDark, Dark}

var toneTags = [...]string{
	Default:     "Default",
	Light:       "Light",
	MediumLight: "MediumLight",
	Medium:      "Medium",
	MediumDark:  "MediumDark",
	Dark:        "Dark",
}

var toneNames = [...]string{
	Light:       "light skin tone",
	MediumLight: "medium-light skin tone",
	Medium:      "medium skin tone",
	MediumDark:  "medium-dark skin tone",
	Dark:        "dark skin tone",
}

// Fitzpatrick type 1-2 through 6.
var toneModifiers = [...]rune{
	Light:       '\U0001F3FB',
	MediumLight: '\U0001F3FC',
	Medium:      '\U0001F3FD',
	MediumDark:  '\U0001F3FE',
	Dark:        '\U0001F3FF',
}

// Valid reports whether t is one of the six defined tones.
func (t SkinTone) Valid() bool {
	return int(t) < len(toneTags)
}

// String returns the textual tag used in the state file.
func (t SkinTone) String() string {
	if !t.Valid() {
		return fmt.Sprintf("SkinTone(%d)", uint8(t))
	}
	return toneTags[t]
}

// Modifier returns the Fitzpatrick modifier rune, or 0 for Default.
func (t SkinTone) Modifier() rune {
	if t == Default || !t.Valid() {
		return 0
	}
	return toneModifiers[t]
}

// Swatch returns a waving hand rendered in this tone, for tone selectors.
func (t SkinTone) Swatch() string {
	return applyTone("👋", t)
}

// MarshalText implements encoding.TextMarshaler.
func (t SkinTone) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid skin tone %d", uint8(t))
	}
	return []byte(toneTags[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the exact tags are
// accepted so that a hand-edited state file with a typo is reported.
func (t *SkinTone) UnmarshalText(text []byte) error {
	for i, tag := range toneTags {
		if tag == string(text) {
			*t = SkinTone(i)
			return nil
		}
	}
	return fmt.Errorf("unknown skin tone %q", text)
}

// ParseSkinTone parses a tone tag leniently: case, '-', '_' and spaces are
// ignored, so "medium-dark", "MEDIUM_DARK" and "MediumDark" are equivalent.
func ParseSkinTone(s string) (SkinTone, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for i, tag := range toneTags {
		if strings.ToLower(tag) == key {
			return SkinTone(i), nil
		}
	}
	return Default, fmt.Errorf("unknown skin tone %q (want one of %v)", s, toneTags)
}

// applyTone inserts the modifier after the first code point of glyph,
// dropping a VS-16 that followed it.
func applyTone(glyph string, t SkinTone) string {
	mod := t.Modifier()
	if mod == 0 || glyph == "" {
		return glyph
	}
	runes := []rune(glyph)
	rest := runes[1:]
	if len(rest) > 0 && rest[0] == vs16 {
		rest = rest[1:]
	}
	var b strings.Builder
	b.WriteRune(runes[0])
	b.WriteRune(mod)
	b.WriteString(string(rest))
	return b.String()
}
