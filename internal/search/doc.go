// Package search filters catalog records by free-text query.
//
// Matching is a case-insensitive substring test of the query against a
// record's name and each of its shortcodes. Both sides are NFC normalized and
// case folded with golang.org/x/text, so "CAFÉ" matches "café" regardless of
// how the accent was composed. There is no ranking: results keep the order of
// the source sequence.
//
// Debouncer delays evaluation of rapidly repeated queries (one per input
// field) so that only the last query typed is evaluated.
package search
