package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// PickOptions holds flags for the pick command.
type PickOptions struct {
	*RootOptions
	Clipboard string
}

// PickResult is the outcome of a pick.
type PickResult struct {
	// Displayed is the glyph that was picked and copied.
	Displayed string `json:"displayed"`

	// Canonical is the base emoji remembered in recents.
	Canonical RecordView `json:"canonical"`

	// Clipboard names the sink the glyph was handed to.
	Clipboard string `json:"clipboard"`
}

func (r PickResult) String() string {
	return r.Displayed + "\n"
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pick <glyph>",
		Short: "Pick an emoji",
		Long: `Pick an emoji: copy it to the clipboard and add its base emoji to the
end of the recents list unless it is already there.

Picking a skin tone variant records the base emoji, so every tone of an
emoji shares one recents entry. The glyph exactly as given is what gets
copied.

Clipboard modes:
  auto   OSC 52 terminal escape when stdout is a terminal, otherwise none
  osc52  always write the OSC 52 escape to stdout
  none   do not touch the clipboard

Examples:
  windot pick 👍🏽
  windot pick 🐶 --clipboard none --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Clipboard, "clipboard", ClipboardAuto, "clipboard sink (auto|osc52|none)")

	return cmd
}

func runPick(opts *PickOptions, glyph string, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	clip, mode, err := newClipboard(opts.Clipboard, cmd.OutOrStdout())
	if err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, err)
	}

	displayed, canonical, err := a.session.PickGlyph(cmd.Context(), glyph)
	if canonical == nil {
		return a.lookupFailure(err)
	}
	if err != nil {
		// The pick counts for this run; only persistence failed.
		slog.Warn("failed to save state after pick", "glyph", canonical.Glyph(), "error", err)
	}

	if err := clip.SetText(displayed.Glyph()); err != nil {
		return a.formatter.Fail(ExitFailure, ErrCodeGeneric, fmt.Errorf("copy to clipboard: %w", err))
	}

	return a.formatter.Success(PickResult{
		Displayed: displayed.Glyph(),
		Canonical: viewOf(canonical),
		Clipboard: mode,
	})
}
