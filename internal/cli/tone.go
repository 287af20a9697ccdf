package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparklet/windot/internal/catalog"
)

// ToneOption is one selectable tone.
type ToneOption struct {
	Tone     catalog.SkinTone `json:"tone"`
	Swatch   string           `json:"swatch"`
	Selected bool             `json:"selected"`
}

// ToneView shows the preferred tone among all options.
type ToneView struct {
	Preferred catalog.SkinTone `json:"preferred"`
	Options   []ToneOption     `json:"options"`
}

func (v ToneView) String() string {
	var buf strings.Builder
	for _, o := range v.Options {
		marker := " "
		if o.Selected {
			marker = "*"
		}
		fmt.Fprintf(&buf, "%s %s  %s\n", marker, o.Swatch, o.Tone)
	}
	return buf.String()
}

func toneView(preferred catalog.SkinTone) ToneView {
	v := ToneView{Preferred: preferred, Options: make([]ToneOption, len(catalog.Tones))}
	for i, t := range catalog.Tones {
		v.Options[i] = ToneOption{Tone: t, Swatch: t.Swatch(), Selected: t == preferred}
	}
	return v
}

// NewToneCommand creates the tone command.
func NewToneCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tone [<tone>]",
		Short: "Show or set the preferred skin tone",
		Long: `Show the preferred skin tone, or set it.

Tones: Default, Light, MediumLight, Medium, MediumDark, Dark. Lowercase
and dashed spellings such as "medium-dark" are accepted.

Examples:
  windot tone
  windot tone medium-dark`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTone(rootOpts, args, cmd)
		},
	}
}

func runTone(opts *RootOptions, args []string, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 1 {
		tone, err := catalog.ParseSkinTone(args[0])
		if err != nil {
			return a.lookupFailure(err)
		}
		if err := a.session.SetPreferredTone(tone); err != nil {
			return a.saveFailure(err)
		}
		a.formatter.VerboseLog("Preferred tone set to %s", tone)
	}

	return a.formatter.Success(toneView(a.session.PreferredTone()))
}
