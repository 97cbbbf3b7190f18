package main

import (
	"fmt"

	"github.com/katalvlaran/curvedist/batch"
	"github.com/katalvlaran/curvedist/curvature"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		opts        = batch.DefaultOptions()
		nanOnDomain bool
		strict      bool
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML batch of inputs and print a YAML report",
		Example: `  curvedist batch inputs.yaml --workers 4
  curvedist batch inputs.yaml --strict   # non-zero exit if any item failed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}
			if nanOnDomain {
				opts.Curvature.Domain = curvature.DomainNaN
			}
			opts.Logger = a.log()

			a.log().Debug("batch loaded", zap.String("file", args[0]), zap.Int("items", len(items)))
			out, err := batch.Run(cmd.Context(), items, &opts)
			if err != nil {
				return err
			}
			if err := batch.WriteReport(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if s := batch.Summarize(out); strict && s.Failed > 0 {
				return fmt.Errorf("batch: %d of %d items failed", s.Failed, s.Total)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", opts.Workers, "Concurrent evaluations")
	cmd.Flags().BoolVar(&nanOnDomain, "nan-on-domain", false, "Report NaN instead of an error on a negative radicand")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any item failed")

	return cmd
}
