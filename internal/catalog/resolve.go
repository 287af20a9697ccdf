package catalog

import "iter"

// Resolve returns the variant of r in tone t. When r has no family, or the
// family has no entry for t, r is returned unchanged.
func Resolve(r *Record, t SkinTone) *Record {
	if v, ok := r.Variant(t); ok {
		return v
	}
	return r
}

// ExpandWithVariants returns the base record followed by every non-default
// variant. For a record without a family the result holds only the record.
func ExpandWithVariants(r *Record) []*Record {
	base := r.Base()
	if len(base.family) == 0 {
		return []*Record{base}
	}
	out := make([]*Record, 0, len(base.family))
	out = append(out, base)
	return append(out, base.family[1:]...)
}

// ResolveAll maps Resolve over seq.
func ResolveAll(seq iter.Seq[*Record], t SkinTone) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for r := range seq {
			if !yield(Resolve(r, t)) {
				return
			}
		}
	}
}
