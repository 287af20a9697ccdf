package cli

import (
	"fmt"
	"strings"

	"github.com/sparklet/windot/internal/catalog"
)

// RecordView is the output form of a catalog record.
type RecordView struct {
	Glyph       string           `json:"glyph"`
	Name        string           `json:"name"`
	Shortcodes  []string         `json:"shortcodes"`
	Group       catalog.Group    `json:"group"`
	Tone        catalog.SkinTone `json:"tone"`
	Since       string           `json:"since"`
	HasVariants bool             `json:"has_variants"`
}

func viewOf(r *catalog.Record) RecordView {
	codes := r.Shortcodes()
	if codes == nil {
		// Keep the JSON field an array for emoji without shortcodes.
		codes = []string{}
	}
	return RecordView{
		Glyph:       r.Glyph(),
		Name:        r.Name(),
		Shortcodes:  codes,
		Group:       r.Group(),
		Tone:        r.Tone(),
		Since:       r.Since(),
		HasVariants: r.HasVariants(),
	}
}

// RecordList renders one record per line in text output.
type RecordList []RecordView

func listOf(records []*catalog.Record) RecordList {
	out := make(RecordList, len(records))
	for i, r := range records {
		out[i] = viewOf(r)
	}
	return out
}

func (l RecordList) String() string {
	var buf strings.Builder
	for _, r := range l {
		buf.WriteString(r.line())
	}
	return buf.String()
}

func (r RecordView) line() string {
	codes := make([]string, len(r.Shortcodes))
	for i, c := range r.Shortcodes {
		codes[i] = ":" + c + ":"
	}
	if len(codes) == 0 {
		return fmt.Sprintf("%s  %s\n", r.Glyph, r.Name)
	}
	return fmt.Sprintf("%s  %s  %s\n", r.Glyph, r.Name, strings.Join(codes, " "))
}
