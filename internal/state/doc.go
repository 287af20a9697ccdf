// Package state persists the user's personalization: the preferred skin tone
// and the recently used emoji.
//
// A Store is the single owner of that state for the life of the process. It
// is created by LoadOrCreate, shared by reference with whoever needs it and
// guarded by a reader/writer lock: accessors return copies, mutations are
// applied atomically in memory and written out by Save.
//
// # File format
//
// The state file is a JSON object with exactly two fields:
//
//	{
//	  "preferred_skin_tone": "Medium",
//	  "recent_emojis": ["👍", "🐶"]
//	}
//
// Recents are stored as glyph strings and re-resolved against the catalog on
// load. Writes replace the file atomically, so a concurrent or subsequent load
// never sees a partial file.
//
// # Recents invariants
//
//   - Entries are canonical identities (base records, never tone variants).
//   - No glyph appears twice.
//   - Order is first-pick order; picking an emoji again does not move it.
//   - The list is unbounded and only shrinks through ClearRecents.
package state
