package store

import (
	"context"
	"fmt"

	"github.com/sparklet/windot/internal/catalog"
)

// Pick is one stored pick event.
type Pick struct {
	ID string `json:"id"`

	// Seq orders picks. It is taken from the clock table in the same
	// transaction as the insert, so handles in separate processes never
	// hand out the same value.
	Seq int64 `json:"seq"`

	// Glyph is what the user clicked, possibly tone adjusted.
	Glyph string `json:"glyph"`

	// BaseGlyph is the canonical identity of Glyph.
	BaseGlyph string `json:"base_glyph"`

	Tone catalog.SkinTone `json:"tone"`
}

// Append stores a pick of the displayed record.
func (s *Store) Append(ctx context.Context, displayed *catalog.Record) (Pick, error) {
	p := Pick{
		ID:        s.ids.Generate(),
		Glyph:     displayed.Glyph(),
		BaseGlyph: displayed.Base().Glyph(),
		Tone:      displayed.Tone(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Pick{}, fmt.Errorf("begin pick: %w", err)
	}
	defer tx.Rollback()

	// The UPDATE takes the write lock before anything is read, so a
	// concurrent writer waits on busy_timeout instead of reusing a seq.
	err = tx.QueryRowContext(ctx,
		"UPDATE clock SET seq = seq + 1 WHERE id = 1 RETURNING seq",
	).Scan(&p.Seq)
	if err != nil {
		return Pick{}, fmt.Errorf("advance clock: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO picks (id, seq, glyph, base_glyph, tone)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Seq, p.Glyph, p.BaseGlyph, p.Tone.String())
	if err != nil {
		return Pick{}, fmt.Errorf("write pick: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Pick{}, fmt.Errorf("commit pick: %w", err)
	}
	return p, nil
}
