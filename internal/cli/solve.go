package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/harmonic"
	"github.com/katalvlaran/harmonic/internal/config"
	"github.com/katalvlaran/harmonic/internal/telemetry"
	"github.com/katalvlaran/harmonic/solver"
)

// Output formats of the solve command.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type solveOpts struct {
	config string
	out    string
	format string
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a harmonic field from a run config",
		Long: `solve loads a TOML or YAML run config, generates the mesh it describes,
applies the constraints and writes one value per vertex.

HARMONIC_* environment variables override config values.`,
		Example: `  harmonic solve --config run.toml
  harmonic solve --config run.yaml --out field.json -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "run config (.toml, .yaml, .yml)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "csv or json (default from --out extension, else csv)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSolve(ctx context.Context, stdout io.Writer, opts solveOpts) (err error) {
	logger := loggerFromContext(ctx)
	format, err := outputFormat(opts.format, opts.out)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			logger.Warn("telemetry shutdown", "err", serr)
		}
	}()

	prog := newProgress(logger)
	m, err := cfg.Mesh.Build()
	if err != nil {
		return err
	}
	prog.done("built mesh", "kind", cfg.Mesh.Kind, "vertices", m.VertexNumber(), "edges", m.EdgeNumber())

	method, err := solver.ParseMethod(cfg.Solver.Method)
	if err != nil {
		return err
	}
	op, err := harmonic.New(m,
		harmonic.WithCotanWeights(cfg.Solver.Cotan),
		harmonic.WithSolvingMethod(method),
		harmonic.WithLogAlpha(cfg.Solver.LogAlpha),
		harmonic.WithThreads(cfg.Solver.Threads),
		harmonic.WithThreshold(cfg.Solver.Threshold),
		harmonic.WithFallback(cfg.Solver.Fallback),
		harmonic.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	field := make([]float64, m.VertexNumber())
	res, runErr := harmonic.Execute(ctx, op, cfg.Constraints.IDs, cfg.Constraints.Values, field)
	var solveErr *harmonic.SolveError
	if runErr != nil && !errors.As(runErr, &solveErr) {
		return runErr
	}
	if solveErr != nil {
		logger.Warn("writing best-effort field", "status", solveErr.Status)
	}

	w := stdout
	if opts.out != "" && opts.out != "-" {
		f, ferr := os.Create(opts.out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	switch format {
	case FormatJSON:
		err = writeJSON(w, res, field)
	default:
		err = writeCSV(w, field)
	}
	if err != nil {
		return fmt.Errorf("writing field: %w", err)
	}

	return runErr
}

// outputFormat resolves the explicit format or infers it from the output
// path extension.
func outputFormat(format, out string) (string, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case "":
		if strings.EqualFold(filepath.Ext(out), ".json") {
			return FormatJSON, nil
		}
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: csv, json)", format)
	}
}
