// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/admm/admm"
)

// solveFlags override individual config keys.
type solveFlags struct {
	kind          string
	rho           float64
	mode          string
	maxIterations int
	verbose       bool
}

func newSolveCmd(e *env) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the configured problem once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, e, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.kind, "kind", "", "problem kind: consensus, lasso or nnls")
	f.Float64Var(&flags.rho, "rho", admm.DefaultRho, "initial penalty parameter")
	f.StringVar(&flags.mode, "mode", "", "penalty adaptation: none, residual_balance or spectral")
	f.IntVar(&flags.maxIterations, "max-iterations", admm.DefaultMaxIterations, "iteration limit")
	f.BoolVar(&flags.verbose, "verbose", false, "log every iteration")

	return cmd
}

// applyOverrides copies the flags the user set onto the configuration.
func (e *env) applyOverrides(cmd *cobra.Command, flags solveFlags) {
	f := cmd.Flags()
	if f.Changed("kind") {
		e.file.Problem.Kind = flags.kind
	}
	if f.Changed("rho") {
		e.file.Solver.Rho = flags.rho
	}
	if f.Changed("mode") {
		e.file.Solver.PenaltyAdaptation = flags.mode
	}
	if f.Changed("max-iterations") {
		e.file.Solver.MaxIterations = flags.maxIterations
	}
	if f.Changed("verbose") {
		e.file.Solver.Verbose = flags.verbose
	}
}

func runSolve(cmd *cobra.Command, e *env, flags solveFlags) error {
	e.applyOverrides(cmd, flags)
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
	inst, err := build()
	if err != nil {
		return err
	}

	e.logger.Info("solving",
		slog.String("problem", inst.Name),
		slog.Int("dim", inst.Dim()),
		slog.String("penalty_adaptation", params.PenaltyAdaptation.String()))
	res, err := inst.Solve(params, admm.WithLogger(e.logger), admm.WithObserver(e.recorder.Run(inst.Name)))
	if err != nil {
		return err
	}

	primal, dual := res.FinalResiduals()
	sci := func(v float64) string { return strconv.FormatFloat(v, 'e', params.Precision, 64) }
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "run_id:          %s\n", e.runID)
	fmt.Fprintf(w, "problem:         %s (n=%d)\n", inst.Name, inst.Dim())
	fmt.Fprintf(w, "status:          %s\n", res.Status)
	fmt.Fprintf(w, "iterations:      %d\n", res.Iterations())
	fmt.Fprintf(w, "elapsed:         %s\n", res.Elapsed)
	fmt.Fprintf(w, "primal_residual: %s\n", sci(primal))
	fmt.Fprintf(w, "dual_residual:   %s\n", sci(dual))
	fmt.Fprintf(w, "objective:       %s\n", sci(inst.Objective(res.X, res.Y)))

	return nil
}
