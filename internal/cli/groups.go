package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sparklet/windot/internal/catalog"
)

// GroupView describes one catalog group.
type GroupView struct {
	Group catalog.Group `json:"group"`
	Label string        `json:"label"`
	Count int           `json:"count"`
}

// GroupList renders one group per line in text output.
type GroupList []GroupView

func (l GroupList) String() string {
	var buf strings.Builder
	for _, g := range l {
		fmt.Fprintf(&buf, "%-18s %s (%d)\n", g.Group, g.Label, g.Count)
	}
	return buf.String()
}

// NewGroupsCommand creates the groups command.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List emoji groups",
		Long: `List the emoji groups in display order with their sizes.

Examples:
  windot groups
  windot groups --max-unicode 12.1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(rootOpts, cmd)
		},
	}
}

func runGroups(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	cat, err := catalog.Builtin().UpTo(opts.MaxUnicode)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, err)
	}

	groups := catalog.Groups()
	out := make(GroupList, len(groups))
	for i, g := range groups {
		n := 0
		for range cat.ByGroup(g) {
			n++
		}
		out[i] = GroupView{Group: g, Label: g.Label(), Count: n}
	}
	return formatter.Success(out)
}
