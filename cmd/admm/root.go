// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/admm/config"
	"github.com/katalvlaran/admm/metrics"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath  string
	logLevel    string
	metricsFile string
	noColor     bool
}

// env is the per-invocation state built in PersistentPreRunE.
type env struct {
	file     config.File
	logger   *slog.Logger
	runID    string
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	var (
		flags globalFlags
		e     env
	)
	root := &cobra.Command{
		Use:           "admm",
		Short:         "Solve synthetic problems with the alternating direction method of multipliers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd, flags)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.flushMetrics(flags.metricsFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML run description (defaults apply to missing keys)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newSolveCmd(&e), newSweepCmd(&e), newTemplateCmd())

	return root
}

// setup loads the configuration and builds the logger and metrics registry.
func (e *env) setup(cmd *cobra.Command, flags globalFlags) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	e.file = config.Default()
	if flags.configPath != "" {
		f, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		e.file = f
	}

	e.runID = uuid.NewString()
	e.logger = newLogger(cmd.ErrOrStderr(), level, flags.noColor).With(slog.String("run_id", e.runID))
	e.registry = prometheus.NewRegistry()
	e.recorder = metrics.NewRecorder(e.registry)

	return nil
}

// flushMetrics writes the registry in text exposition format when requested.
func (e *env) flushMetrics(path string) error {
	if path == "" || e.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("--metrics-file: %w", err)
	}
	e.logger.Debug("metrics written", slog.String("path", path))

	return nil
}

// newLogger returns a tint logger writing to w.
func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// newTemplateCmd prints the default configuration.
func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		// No configuration or logger is needed.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
