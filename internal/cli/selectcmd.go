package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/harmonic/solver"
)

func newSelectCmd() *cobra.Command {
	var (
		vertices, edges, threshold int
		method                     string
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Print the solver picked for a mesh size",
		Long:  `select applies the Auto heuristic (2E + V > threshold selects the iterative solver) without building anything.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertices < 0 || edges < 0 {
				return fmt.Errorf("select: vertices and edges must be >= 0")
			}
			m, err := solver.ParseMethod(method)
			if err != nil {
				return err
			}
			got, err := solver.Select(m, vertices, edges, threshold)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("selected",
				"score", solver.Score(vertices, edges), "threshold", threshold)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), got)
			return err
		},
	}
	cmd.Flags().IntVar(&vertices, "vertices", 0, "vertex count V")
	cmd.Flags().IntVar(&edges, "edges", 0, "edge count E")
	cmd.Flags().StringVar(&method, "method", "auto", "auto, direct or iterative")
	cmd.Flags().IntVar(&threshold, "threshold", solver.DefaultThreshold, "2E+V score above which auto picks iterative")

	return cmd
}
