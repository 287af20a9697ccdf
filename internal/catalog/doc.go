// Package catalog provides the immutable emoji catalog and skin-tone resolution.
//
// The catalog is CUE source (data/catalog.cue) generated from Unicode's
// emoji-test.txt by the gen command, compiled into the binary and decoded once
// on first use. The schema at the top of that file validates every entry.
//
// Every base record may carry a variant family: one record per single-person
// skin tone, with the Default entry being the base record itself.
//
// # Identity
//
// Each record knows its canonical identity (Base) and has a stable integer ID,
// so canonicalizing a record never needs a search. Inputs that only carry text
// (CLI arguments, the persisted state file) are resolved through the identity
// index: the union of every base record and every non-default variant, keyed by
// glyph with VS-16 removed.
//
// # Sequences
//
// All, ByGroup and Identities return iter.Seq values. They are lazy, finite and
// can be ranged over any number of times; ordering is the catalog's definition
// order.
package catalog
