package state

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/sparklet/windot/internal/catalog"
)

// fileFormat is the on-disk shape. Both fields are required; unknown fields
// are ignored.
type fileFormat struct {
	PreferredSkinTone *catalog.SkinTone `json:"preferred_skin_tone"`
	RecentEmojis      *[]string         `json:"recent_emojis"`
}

func encode(st State) ([]byte, error) {
	recents := make([]string, len(st.Recents))
	for i, r := range st.Recents {
		recents[i] = r.Glyph()
	}
	tone := st.PreferredTone
	data, err := json.MarshalIndent(fileFormat{
		PreferredSkinTone: &tone,
		RecentEmojis:      &recents,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decode parses data and resolves recents against cat. Glyphs that are not
// in the catalog are dropped with a warning; variants collapse to their base
// and duplicates keep their first position.
func decode(data []byte, cat *catalog.Catalog, logger *slog.Logger) (State, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return State{}, err
	}
	if f.PreferredSkinTone == nil {
		return State{}, errors.New("missing preferred_skin_tone")
	}
	if f.RecentEmojis == nil {
		return State{}, errors.New("missing recent_emojis")
	}

	st := State{PreferredTone: *f.PreferredSkinTone}
	for _, glyph := range *f.RecentEmojis {
		r, err := cat.Identify(glyph)
		if err != nil {
			logger.Warn("dropping unknown recent emoji", "glyph", glyph)
			continue
		}
		st.Recents = appendUnique(st.Recents, r)
	}
	return st, nil
}
