package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:generate go run ./gen -source gen/emoji-test.txt -shortcodes gen/shortcodes.txt -out data/catalog.cue

//go:embed data/catalog.cue
var catalogSource []byte

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(catalogSource)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
	}
	return c
})

// Builtin returns the compiled-in catalog. It is decoded on first call and
// shared by every caller afterwards.
func Builtin() *Catalog {
	return defaultCatalog()
}

type groupBlock struct {
	Group  string  `json:"group"`
	Emojis []entry `json:"emojis"`
}

type entry struct {
	Glyph string   `json:"glyph"`
	Name  string   `json:"name"`
	Codes []string `json:"codes"`
	Since string   `json:"since"`
	Tones bool     `json:"tones"`
}

// Load compiles CUE catalog source and builds a Catalog from it.
//
// The source must define a top-level "groups" list in the shape declared by
// data/catalog.cue. Glyphs must be unique across the whole identity space,
// including generated tone variants.
func Load(src []byte) (*Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename("catalog.cue"))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	groupsVal := v.LookupPath(cue.ParsePath("groups"))
	if !groupsVal.Exists() {
		return nil, &LoadError{Field: "groups", Message: "groups is required", Pos: v.Pos()}
	}

	var blocks []groupBlock
	if err := groupsVal.Decode(&blocks); err != nil {
		return nil, formatCUEError(err)
	}

	b := newBuilder()
	for _, block := range blocks {
		g, err := ParseGroup(block.Group)
		if err != nil {
			return nil, &LoadError{Field: "group", Message: err.Error()}
		}
		for _, e := range block.Emojis {
			if err := b.add(g, e); err != nil {
				return nil, err
			}
		}
	}
	return b.catalog, nil
}

type builder struct {
	catalog *Catalog
	nextID  int
}

func newBuilder() *builder {
	return &builder{catalog: &Catalog{index: make(map[string]*Record)}}
}

func (b *builder) add(g Group, e entry) error {
	base := &Record{
		glyph:      e.Glyph,
		name:       e.Name,
		shortcodes: e.Codes,
		group:      g,
		since:      e.Since,
		tone:       Default,
	}
	if err := b.register(base); err != nil {
		return err
	}

	if e.Tones {
		base.family = make([]*Record, len(Tones))
		base.family[Default] = base
		for _, t := range Tones[1:] {
			v := &Record{
				glyph:      applyTone(e.Glyph, t),
				name:       e.Name + ": " + toneNames[t],
				shortcodes: e.Codes,
				group:      g,
				since:      e.Since,
				tone:       t,
				base:       base,
			}
			if err := b.register(v); err != nil {
				return err
			}
			base.family[t] = v
		}
	}

	b.catalog.records = append(b.catalog.records, base)
	return nil
}

func (b *builder) register(r *Record) error {
	key := glyphKey(r.glyph)
	if prev, ok := b.catalog.index[key]; ok {
		return &LoadError{
			Field:   "glyph",
			Message: fmt.Sprintf("%q (%s) collides with %q (%s)", r.glyph, r.name, prev.glyph, prev.name),
		}
	}
	r.id = b.nextID
	b.nextID++
	b.catalog.index[key] = r
	return nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &LoadError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return &LoadError{Field: "cue", Message: first.Error()}
}
