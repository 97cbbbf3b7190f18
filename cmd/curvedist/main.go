// Package main is the curvedist command: curvature-corrected distances,
// qubit preparation labels and YAML batches from the shell.
//
// Usage:
//
//	curvedist distance --a 3 --b 4 --r 10 [--minus]
//	curvedist prepare  --a 3 --b 4 --r 10 [--qubits 5] [--target 0]
//	curvedist batch inputs.yaml [--workers 8]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// log returns the configured logger, or a no-op one before PersistentPreRunE ran.
func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}

	return a.logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "curvedist",
		Short: "Curvature-corrected distances: c² = a² + b² ± a²b²/R²",
		Long: `curvedist evaluates the curvature-corrected Pythagorean relation

  c² = a² + b² + (a²·b²)/R²   (plus, hyperbolic)
  c² = a² + b² − (a²·b²)/R²   (minus, spherical)

for single inputs, turns the comparison with the flat distance into a qubit
preparation label, and runs YAML batches concurrently.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newDistanceCmd(a),
		newPrepareCmd(a),
		newBatchCmd(a),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
