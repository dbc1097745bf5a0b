// Package cli implements the harmonic command-line interface.
//
// # Commands
//
//   - solve: build a mesh from a run config, compute the harmonic field and
//     write it as CSV or JSON
//   - select: print the solver the Auto heuristic picks for a mesh size
//   - version: print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log. The logger travels in the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information reported by the version command.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// RootCommand builds the command tree. Logs go to stderr at the level chosen
// by --verbose.
func RootCommand(stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "harmonic",
		Short:        "Compute harmonic scalar fields on triangle and tet meshes",
		Long:         `harmonic builds a mesh, pins a few vertices to target values and solves for the smoothest field that interpolates them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return RootCommand(os.Stderr).ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "harmonic %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return err
		},
	}
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of a step with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
