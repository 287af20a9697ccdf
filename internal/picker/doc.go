// Package picker orchestrates one emoji-pick interaction.
//
// A Session combines the immutable catalog, the personalization Store and an
// optional pick history. It builds the candidate lists a front end displays
// (always tone-resolved against the current preference) and applies the
// outcome of a pick. It owns no state of its own.
//
// Front ends are external collaborators. They receive records, show
// Record.Glyph, and hand a chosen record back to Pick; placing text on the
// clipboard is their job, through a Clipboard.
package picker
