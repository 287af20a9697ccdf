package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparklet/windot/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
	Top   bool
	Clear bool
}

// PickList renders pick events in text output.
type PickList []store.Pick

func (l PickList) String() string {
	var buf strings.Builder
	for _, p := range l {
		fmt.Fprintf(&buf, "%6d  %s  %s\n", p.Seq, p.Glyph, p.Tone)
	}
	return buf.String()
}

// CountList renders pick counts in text output.
type CountList []store.GlyphCount

func (l CountList) String() string {
	var buf strings.Builder
	for _, c := range l {
		fmt.Fprintf(&buf, "%s  %d\n", c.BaseGlyph, c.Count)
	}
	return buf.String()
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the pick history",
		Long: `Show past picks, newest first, or the most picked emoji with --top.

The history records every pick with the glyph as displayed. It is kept in
history.db in the data directory and is independent of the recents list.

Examples:
  windot history --limit 10
  windot history --top --format json
  windot history --clear`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum entries (0 = all)")
	cmd.Flags().BoolVar(&opts.Top, "top", false, "count picks per emoji, most picked first")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "delete the pick history")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.historyRequired(); err != nil {
		return err
	}
	if err := a.checkLimit(opts.Limit); err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.Clear {
		if err := a.history.Clear(ctx); err != nil {
			return a.formatter.Fail(ExitFailure, ErrCodeHistory, err)
		}
		return a.formatter.Success(PickList{})
	}

	if opts.Top {
		counts, err := a.history.TopPicks(ctx, opts.Limit)
		if err != nil {
			return a.formatter.Fail(ExitFailure, ErrCodeHistory, err)
		}
		return a.formatter.Success(CountList(counts))
	}

	picks, err := a.history.ReadPicks(ctx, opts.Limit)
	if err != nil {
		return a.formatter.Fail(ExitFailure, ErrCodeHistory, err)
	}
	return a.formatter.Success(PickList(picks))
}
