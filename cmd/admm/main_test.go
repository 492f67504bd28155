// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

// TestSolveCommand solves the default lasso problem and writes metrics.
func TestSolveCommand(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "admm.prom")
	out, _, err := execute(t, "solve", "--no-color", "--metrics-file", metricsPath)
	require.NoError(t, err)
	require.Contains(t, out, "problem:         lasso (n=30)")
	require.Contains(t, out, "status:")
	require.Contains(t, out, "run_id:")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(prom), `admm_iterations_total{run="lasso"}`)
}

// TestSolveCommandVerbose logs iterations through the tint handler.
func TestSolveCommandVerbose(t *testing.T) {
	_, logs, err := execute(t, "solve", "--no-color", "--kind", "consensus",
		"--verbose", "--max-iterations", "5", "--mode", "spectral")
	require.NoError(t, err)
	require.Contains(t, logs, "admm iteration")
	require.Contains(t, logs, "run_id=")
	require.Contains(t, logs, "penalty_adaptation=spectral")
}

// TestSolveCommandConfigFile reads overrides from YAML.
func TestSolveCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := "solver:\n  max_iterations: 2\nproblem:\n  kind: nnls\n  rows: 20\n  cols: 6\n  support: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "solve", "--no-color", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "problem:         nnls (n=6)")
	require.Contains(t, out, "iterations:      2")
	require.Contains(t, out, "ITERATION_LIMIT")
}

// TestSweepCommand prints one row per rho and a best pick.
func TestSweepCommand(t *testing.T) {
	out, _, err := execute(t, "sweep", "--no-color", "--kind", "consensus", "--rhos", "0.5,1,2", "--workers", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5) // header, three runs, best
	require.True(t, strings.HasPrefix(lines[0], "RHO"))
	require.True(t, strings.HasPrefix(lines[4], "best rho:"))
}

// TestTemplateCommand prints a configuration that parses back.
func TestTemplateCommand(t *testing.T) {
	out, _, err := execute(t, "template")
	require.NoError(t, err)
	require.Contains(t, out, "penalty_adaptation: none")

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	_, _, err = execute(t, "solve", "--no-color", "--config", path, "--max-iterations", "1")
	require.NoError(t, err)
}

// TestCommandErrors covers bad flags and configuration.
func TestCommandErrors(t *testing.T) {
	_, _, err := execute(t, "solve", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "solve", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", "--mode", "fast")
	require.Error(t, err)

	_, _, err = execute(t, "sweep", "--rhos", "1,-1")
	require.Error(t, err)
}
