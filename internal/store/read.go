package store

import (
	"context"
	"fmt"

	"github.com/sparklet/windot/internal/catalog"
)

// GlyphCount is how often one canonical emoji was picked.
type GlyphCount struct {
	BaseGlyph string `json:"base_glyph"`
	Count     int    `json:"count"`

	// FirstSeq breaks ties: the emoji picked earlier ranks first.
	FirstSeq int64 `json:"first_seq"`
}

// ReadPicks returns the most recent picks first. A non-positive limit
// returns every pick.
//
// Returns an empty slice (not nil) if there are no picks.
func (s *Store) ReadPicks(ctx context.Context, limit int) ([]Pick, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, glyph, base_glyph, tone
		FROM picks
		ORDER BY seq DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query picks: %w", err)
	}
	defer rows.Close()

	picks := []Pick{}
	for rows.Next() {
		var p Pick
		var tone string
		if err := rows.Scan(&p.ID, &p.Seq, &p.Glyph, &p.BaseGlyph, &tone); err != nil {
			return nil, fmt.Errorf("scan pick: %w", err)
		}
		if err := p.Tone.UnmarshalText([]byte(tone)); err != nil {
			return nil, fmt.Errorf("scan pick %s: %w", p.ID, err)
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate picks: %w", err)
	}
	return picks, nil
}

// TopPicks returns canonical emoji by pick count, most picked first. Tone
// variants count toward their base.
func (s *Store) TopPicks(ctx context.Context, limit int) ([]GlyphCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT base_glyph, COUNT(*) AS n, MIN(seq) AS first_seq
		FROM picks
		GROUP BY base_glyph
		ORDER BY n DESC, first_seq ASC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query top picks: %w", err)
	}
	defer rows.Close()

	counts := []GlyphCount{}
	for rows.Next() {
		var gc GlyphCount
		if err := rows.Scan(&gc.BaseGlyph, &gc.Count, &gc.FirstSeq); err != nil {
			return nil, fmt.Errorf("scan top picks: %w", err)
		}
		counts = append(counts, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top picks: %w", err)
	}
	return counts, nil
}

// Count returns the number of stored picks of the canonical record r.
func (s *Store) Count(ctx context.Context, r *catalog.Record) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM picks WHERE base_glyph = ?", r.Base().Glyph()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count picks: %w", err)
	}
	return n, nil
}

// SQLite treats a negative LIMIT as no limit.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
