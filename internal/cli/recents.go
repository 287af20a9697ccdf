package cli

import (
	"github.com/spf13/cobra"
)

// RecentsOptions holds flags for the recents command.
type RecentsOptions struct {
	*RootOptions
	Clear bool
}

// NewRecentsCommand creates the recents command.
func NewRecentsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecentsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "recents",
		Short: "Show or clear recently picked emoji",
		Long: `Show recently picked emoji in the order they were first picked, rendered
in the preferred skin tone.

Examples:
  windot recents
  windot recents --clear`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecents(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "forget every recently picked emoji")

	return cmd
}

func runRecents(opts *RecentsOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Clear {
		if err := a.session.ClearRecents(); err != nil {
			return a.saveFailure(err)
		}
		a.formatter.VerboseLog("Cleared recents")
	}

	return a.formatter.Success(listOf(a.session.Recents()))
}
