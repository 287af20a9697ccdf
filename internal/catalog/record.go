package catalog

import "slices"

// Record is one entry of the identity space: a base emoji or one of its
// skin-tone variants. Records are immutable and compared by pointer.
type Record struct {
	id         int
	glyph      string
	name       string
	shortcodes []string
	group      Group
	since      string
	tone       SkinTone

	// base is nil for base records.
	base *Record

	// family is set on base records that accept a skin tone. Index i holds
	// the variant for SkinTone(i); index 0 is the base record itself.
	family []*Record
}

// ID returns the record's stable key within the catalog it was loaded from.
func (r *Record) ID() int { return r.id }

// Glyph returns the displayable string.
func (r *Record) Glyph() string { return r.glyph }

// Name returns the CLDR short name.
func (r *Record) Name() string { return r.name }

// Shortcodes returns the search aliases. Variants inherit their base's.
func (r *Record) Shortcodes() []string { return slices.Clone(r.shortcodes) }

// Group returns the record's category.
func (r *Record) Group() Group { return r.group }

// Since returns the Unicode Emoji version that introduced the glyph.
func (r *Record) Since() string { return r.since }

// Tone returns Default for base records and the variant's tone otherwise.
func (r *Record) Tone() SkinTone { return r.tone }

// Base returns the canonical identity: the record itself for base records,
// the owning base record for variants.
func (r *Record) Base() *Record {
	if r.base != nil {
		return r.base
	}
	return r
}

// IsVariant reports whether r is a non-default tone variant.
func (r *Record) IsVariant() bool { return r.base != nil }

// HasVariants reports whether r's canonical identity has a variant family.
func (r *Record) HasVariants() bool { return len(r.Base().family) > 0 }

// Variant returns the family entry for t, if the family has one.
func (r *Record) Variant(t SkinTone) (*Record, bool) {
	family := r.Base().family
	if int(t) >= len(family) {
		return nil, false
	}
	return family[t], true
}

// Family returns the variant family in tone order, Default first, or nil.
func (r *Record) Family() []*Record {
	return slices.Clone(r.Base().family)
}

func (r *Record) String() string { return r.glyph }
