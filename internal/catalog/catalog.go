package catalog

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/text/unicode/norm"
)

// VS-16, the emoji presentation selector. Whether it is present on a glyph
// depends on the producer, so lookups ignore it.
const vs16 = '\uFE0F'

// Catalog is an immutable, ordered set of base emoji records together with
// an index over their identity space. It is safe for concurrent use.
type Catalog struct {
	records []*Record
	index   map[string]*Record
}

// Len returns the number of base records.
func (c *Catalog) Len() int { return len(c.records) }

// All yields every base record in definition order.
func (c *Catalog) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, r := range c.records {
			if !yield(r) {
				return
			}
		}
	}
}

// ByGroup yields the base records of group g in definition order.
func (c *Catalog) ByGroup(g Group) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, r := range c.records {
			if r.group != g {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Identities yields the identity space: each base record followed by its
// non-default variants.
func (c *Catalog) Identities() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, r := range c.records {
			if !yield(r) {
				return
			}
			for _, v := range r.family[min(1, len(r.family)):] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Lookup finds the identity (base or variant) whose glyph matches. Matching
// ignores VS-16 and normalizes to NFC.
func (c *Catalog) Lookup(glyph string) (*Record, bool) {
	r, ok := c.index[glyphKey(glyph)]
	return r, ok
}

// Identify resolves a glyph to its canonical identity, the base record.
func (c *Catalog) Identify(glyph string) (*Record, error) {
	r, ok := c.Lookup(glyph)
	if !ok {
		return nil, &UnresolvedIdentityError{Glyph: glyph}
	}
	return r.Base(), nil
}

// CanonicalIdentity maps a displayed record, which may already be tone
// adjusted, back to its base record in this catalog. The match is made on
// the glyph so that records from another catalog instance are checked
// against this one's identity space.
func (c *Catalog) CanonicalIdentity(displayed *Record) (*Record, error) {
	if displayed == nil {
		return nil, &UnresolvedIdentityError{}
	}
	return c.Identify(displayed.glyph)
}

// UpTo returns a catalog restricted to emoji introduced in Unicode Emoji
// version max or earlier, e.g. "12.1". Records are shared with c, so IDs are
// unchanged. An empty max returns c itself.
func (c *Catalog) UpTo(max string) (*Catalog, error) {
	if max == "" {
		return c, nil
	}
	limit := "v" + strings.TrimPrefix(max, "v")
	if !semver.IsValid(limit) {
		return nil, fmt.Errorf("invalid unicode version %q", max)
	}

	out := &Catalog{index: make(map[string]*Record)}
	for _, r := range c.records {
		if semver.Compare("v"+r.since, limit) > 0 {
			continue
		}
		out.records = append(out.records, r)
		out.index[glyphKey(r.glyph)] = r
		for _, v := range r.family[min(1, len(r.family)):] {
			out.index[glyphKey(v.glyph)] = v
		}
	}
	return out, nil
}

func glyphKey(glyph string) string {
	return strings.ReplaceAll(norm.NFC.String(glyph), string(vs16), "")
}
