package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVariantsCommand creates the variants command.
func NewVariantsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "variants <glyph>",
		Short: "Show every skin tone of an emoji",
		Long: `Show the base emoji followed by its five skin tone variants.

Any member of the family may be given. Emoji that do not accept a skin
tone have no variants.

Examples:
  windot variants 👍
  windot variants 👋🏾 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(rootOpts, args[0], cmd)
		},
	}
}

func runVariants(opts *RootOptions, glyph string, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	variants, err := a.session.VariantsForGlyph(glyph)
	if err != nil {
		return a.lookupFailure(err)
	}

	if len(variants) == 0 && a.formatter.Format != "json" {
		fmt.Fprintf(a.formatter.Writer, "%s has no skin tone variants\n", glyph)
		return nil
	}
	return a.formatter.Success(listOf(variants))
}
