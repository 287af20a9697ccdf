package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Limit int
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Find emoji by name or shortcode",
		Long: `Find emoji whose name or a shortcode contains the query,
ignoring case. Multiple arguments are joined with spaces.

Results follow catalog order and are shown in the preferred skin tone.

Examples:
  windot search dog
  windot search thumbs --format json
  windot search red heart`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum results (0 = all)")

	return cmd
}

func runSearch(opts *SearchOptions, query string, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.checkLimit(opts.Limit); err != nil {
		return err
	}

	a.formatter.VerboseLog("Searching for %q", query)
	results := slices.Collect(a.session.CandidatesForQuery(query))
	return a.formatter.Success(listOf(truncate(results, opts.Limit)))
}
