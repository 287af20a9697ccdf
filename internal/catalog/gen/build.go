package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sparklet/windot/internal/catalog"
)

const (
	fullyQualified = "fully-qualified"
	componentGroup = "Component"
)

// base is one catalog entry as written to catalog.cue.
type base struct {
	Group catalog.Group
	Glyph string
	Name  string
	Codes []string
	Since string
	Tones bool
}

// selectBases keeps the fully-qualified emoji that are not tone variants or
// components, in file order, and flags the ones that take a skin tone.
func selectBases(entries []testEntry) ([]*base, error) {
	qualified := make(map[string]bool)
	multiPerson := make(map[string]bool)
	for _, e := range entries {
		if e.Status != fullyQualified {
			continue
		}
		qualified[e.Glyph] = true
		// "handshake: light skin tone, dark skin tone" marks handshake as a
		// grouping of people whose tones vary independently.
		if strings.Count(e.Name, "skin tone") >= 2 {
			if prefix, _, ok := strings.Cut(e.Name, ": "); ok {
				multiPerson[prefix] = true
			}
		}
	}

	var out []*base
	for _, e := range entries {
		if e.Status != fullyQualified || e.Group == componentGroup || hasModifier(e.Glyph) {
			continue
		}
		g, err := catalog.ParseGroup(strings.ReplaceAll(e.Group, " & ", "And"))
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", e.Glyph, e.Name, err)
		}
		out = append(out, &base{
			Group: g,
			Glyph: e.Glyph,
			Name:  e.Name,
			Since: e.Since,
			Tones: !multiPerson[e.Name] && hasAllTones(e.Glyph, qualified),
		})
	}
	return out, nil
}

func hasModifier(glyph string) bool {
	for _, t := range catalog.Tones[1:] {
		if strings.ContainsRune(glyph, t.Modifier()) {
			return true
		}
	}
	return false
}

func hasAllTones(glyph string, qualified map[string]bool) bool {
	for _, t := range catalog.Tones[1:] {
		if !qualified[toned(glyph, t)] {
			return false
		}
	}
	return true
}

// toned builds the single-modifier form: the modifier follows the first code
// point and replaces a VS-16 there.
func toned(glyph string, t catalog.SkinTone) string {
	first, size := utf8.DecodeRuneInString(glyph)
	rest := strings.TrimPrefix(glyph[size:], "\uFE0F")
	return string(first) + string(t.Modifier()) + rest
}

func mergeShortcodes(bases []*base, codes map[string][]string) error {
	seen := make(map[string]bool, len(codes))
	for _, b := range bases {
		key := overlayKey(b.Glyph)
		if c, ok := codes[key]; ok {
			b.Codes = c
			seen[key] = true
		}
	}
	for key := range codes {
		if !seen[key] {
			return fmt.Errorf("shortcode overlay lists %q, which is not a base emoji", key)
		}
	}
	return nil
}

func countToned(bases []*base) int {
	n := 0
	for _, b := range bases {
		if b.Tones {
			n++
		}
	}
	return n
}

const header = `package catalog

// Group tags, in Unicode CLDR order.
#Group: "SmileysAndEmotion" | "PeopleAndBody" | "AnimalsAndNature" |
	"FoodAndDrink" | "TravelAndPlaces" | "Activities" | "Objects" |
	"Symbols" | "Flags"

#Emoji: {
	glyph: string & !=""
	name:  string & !=""
	codes: [...string] | *[]
	// Unicode Emoji version that introduced the glyph.
	since: =~"^[0-9]+\\.[0-9]+$"
	// Single-person emoji that accept a Fitzpatrick modifier.
	tones: bool | *false
}

groups: [...{
	group: #Group
	emojis: [...#Emoji]
}]

groups: [
`

// render writes bases as CUE, one group block per run of equal groups.
func render(w io.Writer, version string, bases []*base) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by gen from emoji-test.txt %s. DO NOT EDIT.\n\n", version)
	b.WriteString(header)

	open := false
	var current catalog.Group
	for _, e := range bases {
		if !open || e.Group != current {
			if open {
				b.WriteString("\t\t]\n\t},\n")
			}
			fmt.Fprintf(&b, "\t{\n\t\tgroup: %q\n\t\temojis: [\n", e.Group.String())
			current, open = e.Group, true
		}

		fmt.Fprintf(&b, "\t\t\t{glyph: %s, name: %s", quote(e.Glyph), quote(e.Name))
		if len(e.Codes) > 0 {
			quoted := make([]string, len(e.Codes))
			for i, c := range e.Codes {
				quoted[i] = quote(c)
			}
			fmt.Fprintf(&b, ", codes: [%s]", strings.Join(quoted, ", "))
		}
		fmt.Fprintf(&b, ", since: %q", e.Since)
		if e.Tones {
			b.WriteString(", tones: true")
		}
		b.WriteString("},\n")
	}
	if open {
		b.WriteString("\t\t]\n\t},\n")
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// quote writes a CUE string literal. Glyphs stay raw so the file reads as
// emoji; only the delimiter and backslash need escaping.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
