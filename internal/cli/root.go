package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sparklet/windot/internal/state"
)

// EnvPrefix prefixes the environment variables that override flags,
// e.g. WINDOT_DATA_DIR for --data-dir.
const EnvPrefix = "windot"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	DataDir    string
	MaxUnicode string
	NoHistory  bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// configKeys are the flags that may also come from the environment.
var configKeys = []string{"data-dir", "max-unicode", "no-history"}

// NewRootCommand creates the root command for the windot CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "windot",
		Short: "windot - emoji picker",
		Long: `Browse, search and pick emoji.

windot remembers a preferred skin tone and the emoji you picked most
recently. Lists are shown in the preferred tone; picks are remembered by
their base emoji so every tone shares one recents entry.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if err := opts.resolve(v); err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.String("data-dir", "", "directory holding state and history (default: per-user data directory)")
	flags.String("max-unicode", "", `hide emoji newer than this Unicode Emoji version, e.g. "12.1"`)
	flags.Bool("no-history", false, "do not record or read the pick history database")
	bindConfig(v, flags)

	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewVariantsCommand(opts))
	cmd.AddCommand(NewPickCommand(opts))
	cmd.AddCommand(NewRecentsCommand(opts))
	cmd.AddCommand(NewToneCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// bindConfig lets WINDOT_* environment variables supply flags that were
// not given on the command line.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// resolve fills the config-backed options from flags and environment.
func (o *RootOptions) resolve(v *viper.Viper) error {
	o.DataDir = v.GetString("data-dir")
	o.MaxUnicode = v.GetString("max-unicode")
	o.NoHistory = v.GetBool("no-history")

	if o.DataDir == "" {
		dir, err := state.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("locate data directory: %w", err)
		}
		o.DataDir = dir
	}
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
