package catalog

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// UnresolvedIdentityError reports a glyph that is not part of the catalog's
// identity space. When the glyph came from the catalog itself this means the
// display and the catalog disagree, which is a programming error.
type UnresolvedIdentityError struct {
	Glyph string
}

func (e *UnresolvedIdentityError) Error() string {
	return fmt.Sprintf("glyph %q does not belong to the catalog", e.Glyph)
}

// IsUnresolved reports whether err is an UnresolvedIdentityError.
func IsUnresolved(err error) bool {
	var ue *UnresolvedIdentityError
	return errors.As(err, &ue)
}

// LoadError reports catalog source that failed to compile or validate.
type LoadError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
