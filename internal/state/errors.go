package state

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Backend when the requested file does not exist.
var ErrNotFound = errors.New("state file not found")

// CorruptStateError reports a state file that exists but cannot be parsed.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state file %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// StorageIOError reports a failure to create, read or write persisted state.
type StorageIOError struct {
	// Op is one of "mkdir", "read", "write".
	Op   string
	Path string
	Err  error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageIOError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err is a CorruptStateError.
// Uses errors.As to handle wrapped errors.
func IsCorrupt(err error) bool {
	var ce *CorruptStateError
	return errors.As(err, &ce)
}

// IsStorageIO reports whether err is a StorageIOError.
// Uses errors.As to handle wrapped errors.
func IsStorageIO(err error) bool {
	var se *StorageIOError
	return errors.As(err, &se)
}
