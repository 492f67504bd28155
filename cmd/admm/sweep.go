// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/admm/sweep"
)

// sweepFlags override the sweep section of the configuration.
type sweepFlags struct {
	solve   solveFlags
	rhos    []float64
	workers int
}

func newSweepCmd(e *env) *cobra.Command {
	var flags sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve the configured problem for several initial penalties concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, e, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.solve.kind, "kind", "", "problem kind: consensus, lasso or nnls")
	f.StringVar(&flags.solve.mode, "mode", "", "penalty adaptation: none, residual_balance or spectral")
	f.IntVar(&flags.solve.maxIterations, "max-iterations", 0, "iteration limit")
	f.Float64SliceVar(&flags.rhos, "rhos", nil, "initial penalties, comma separated")
	f.IntVar(&flags.workers, "workers", 0, "concurrent solves (0 keeps the configured value)")

	return cmd
}

func runSweep(cmd *cobra.Command, e *env, flags sweepFlags) error {
	e.applyOverrides(cmd, flags.solve)
	if cmd.Flags().Changed("rhos") {
		e.file.Sweep.Rhos = flags.rhos
	}
	if flags.workers > 0 {
		e.file.Sweep.Workers = flags.workers
	}
	if err := e.file.Validate(); err != nil {
		return err
	}
	params, err := e.file.Params()
	if err != nil {
		return err
	}
	build, err := instanceBuilder(e.file.Problem)
	if err != nil {
		return err
	}

	opts := []sweep.Option{sweep.WithLogger(e.logger), sweep.WithRecorder(e.recorder)}
	if e.file.Sweep.Workers > 0 {
		opts = append(opts, sweep.WithWorkers(e.file.Sweep.Workers))
	}
	e.logger.Info("sweeping",
		slog.String("problem", e.file.Problem.Kind),
		slog.Int("runs", len(e.file.Sweep.Rhos)))
	out, err := sweep.Run(cmd.Context(), build, params, e.file.Sweep.Rhos, opts...)
	if err != nil {
		return err
	}

	sci := func(v float64) string { return strconv.FormatFloat(v, 'e', params.Precision, 64) }
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RHO\tSTATUS\tITERATIONS\tFINAL_RHO\tPRIMAL\tDUAL\tOBJECTIVE\tELAPSED")
	for _, oc := range out {
		fmt.Fprintf(tw, "%g\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			oc.Rho, oc.Status, oc.Iterations, sci(oc.FinalRho),
			sci(oc.PrimalResidual), sci(oc.DualResidual), sci(oc.Objective), oc.Elapsed)
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if best := sweep.Best(out); best >= 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "best rho: %g\n", out[best].Rho)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "best rho: none converged")
	}

	return nil
}
