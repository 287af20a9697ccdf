// Package store provides a SQLite-backed log of pick events.
//
// The log is append-only history kept next to the state file. It is not the
// source of truth for recents (see internal/state); it exists so a picker can
// offer "frequently used" ordering and so picks can be audited.
//
// # Ordering
//
//   - Every pick is stamped with a seq drawn from the clock table inside
//     the insert transaction, so concurrent processes sharing the file get
//     distinct, increasing values. Wall-clock time is never used.
//   - All reads are ordered by seq, so results are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
