package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sparklet/windot/internal/catalog"
	"github.com/sparklet/windot/internal/picker"
	"github.com/sparklet/windot/internal/state"
	"github.com/sparklet/windot/internal/store"
)

// app is the per-invocation wiring shared by every command.
type app struct {
	opts      *RootOptions
	formatter *OutputFormatter
	session   *picker.Session
	history   *store.Store // nil with --no-history
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// openApp loads the catalog, the state file and, unless disabled, the pick
// history. A corrupt state file is set aside and replaced with defaults.
// Errors are already reported through the formatter.
//
// The state file is always resolved against the full catalog so that
// --max-unicode only hides newer emoji; saving never drops them.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	a := &app{opts: opts, formatter: newFormatter(opts, cmd)}

	full := catalog.Builtin()
	view, err := full.UpTo(opts.MaxUnicode)
	if err != nil {
		return nil, a.formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, err)
	}

	a.formatter.VerboseLog("Using data directory %s", opts.DataDir)
	st, err := state.LoadOrRecover(state.PathIn(opts.DataDir), full)
	if err != nil {
		return nil, a.formatter.Fail(ExitFailure, ErrCodeStorage, err)
	}

	sessionOpts := []picker.Option{picker.WithCatalog(view)}
	if !opts.NoHistory {
		h, err := store.Open(filepath.Join(opts.DataDir, store.FileName))
		if err != nil {
			return nil, a.formatter.Fail(ExitFailure, ErrCodeHistory, err)
		}
		a.history = h
		sessionOpts = append(sessionOpts, picker.WithHistory(h))
	}

	a.session = picker.New(st, sessionOpts...)
	return a, nil
}

// Close releases the history database.
func (a *app) Close() {
	if a.history == nil {
		return
	}
	if err := a.history.Close(); err != nil {
		slog.Warn("failed to close history", "error", err)
	}
}

// lookupFailure maps a glyph, tone or group resolution error to its
// exit error.
func (a *app) lookupFailure(err error) error {
	if catalog.IsUnresolved(err) {
		return a.formatter.Fail(ExitCommandError, ErrCodeUnknownGlyph, err)
	}
	return a.formatter.Fail(ExitCommandError, ErrCodeInvalidArgument, err)
}

// saveFailure reports a mutation whose in-memory effect stands but whose
// save failed.
func (a *app) saveFailure(err error) error {
	if state.IsStorageIO(err) {
		return a.formatter.Fail(ExitFailure, ErrCodeStorage, err)
	}
	return a.formatter.Fail(ExitFailure, ErrCodeGeneric, err)
}

// historyRequired fails commands that need the pick history when it is
// disabled.
func (a *app) historyRequired() error {
	if a.history != nil {
		return nil
	}
	return a.formatter.Fail(ExitCommandError, ErrCodeHistory,
		errors.New("pick history is disabled (--no-history)"))
}

// checkLimit rejects negative --limit values.
func (a *app) checkLimit(limit int) error {
	if limit < 0 {
		return a.formatter.Fail(ExitCommandError, ErrCodeInvalidArgument,
			fmt.Errorf("limit must be non-negative, got %d", limit))
	}
	return nil
}
