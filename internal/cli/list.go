package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparklet/windot/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Group string
	Limit int
}

// GroupListing is one group's candidates.
type GroupListing struct {
	Group  catalog.Group `json:"group"`
	Label  string        `json:"label"`
	Emojis RecordList    `json:"emojis"`
}

// Listing renders groups under their labels in text output.
type Listing []GroupListing

func (l Listing) String() string {
	var buf strings.Builder
	for i, g := range l {
		if len(l) > 1 {
			if i > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(g.Label + "\n")
		}
		buf.WriteString(g.Emojis.String())
	}
	return buf.String()
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emoji by group in the preferred skin tone",
		Long: `List the emoji of one group, or of every group in display order.

Emoji that accept a skin tone are shown in the preferred tone.

Examples:
  windot list --group PeopleAndBody
  windot list --group flags --limit 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "group tag, e.g. SmileysAndEmotion (default: all groups)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "maximum emoji per group (0 = all)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.checkLimit(opts.Limit); err != nil {
		return err
	}

	groups := catalog.Groups()
	if opts.Group != "" {
		g, err := catalog.ParseGroup(opts.Group)
		if err != nil {
			return a.lookupFailure(err)
		}
		groups = []catalog.Group{g}
	}

	out := make(Listing, 0, len(groups))
	for _, g := range groups {
		records := slices.Collect(a.session.CandidatesForGroup(g))
		out = append(out, GroupListing{
			Group:  g,
			Label:  g.Label(),
			Emojis: listOf(truncate(records, opts.Limit)),
		})
	}
	return a.formatter.Success(out)
}

// truncate keeps at most limit records when limit is positive.
func truncate(records []*catalog.Record, limit int) []*catalog.Record {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
