package main

import (
	"fmt"

	"github.com/katalvlaran/curvedist/curvature"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inputFlags are the a/b/r/branch flags shared by distance and prepare.
type inputFlags struct {
	a, b, r float64
	minus   bool
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.a, "a", 0, "First leg length")
	cmd.Flags().Float64Var(&f.b, "b", 0, "Second leg length")
	cmd.Flags().Float64Var(&f.r, "r", 0, "Curvature radius R (non-zero)")
	cmd.Flags().BoolVar(&f.minus, "minus", false, "Use the minus (spherical) branch")
	_ = cmd.MarkFlagRequired("r")
}

func (f *inputFlags) input() curvature.Input {
	in := curvature.Input{A: f.a, B: f.b, R: f.r, Branch: curvature.Plus}
	if f.minus {
		in.Branch = curvature.Minus
	}

	return in
}

func newDistanceCmd(a *app) *cobra.Command {
	var (
		flags       inputFlags
		nanOnDomain bool
		terms       bool
	)
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Evaluate one curvature-corrected distance",
		Example: `  curvedist distance --a 3 --b 4 --r 10
  curvedist distance --a 1 --b 1 --r 0.5 --minus --nan-on-domain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := flags.input()
			opts := curvature.DefaultOptions()
			if nanOnDomain {
				opts.Domain = curvature.DomainNaN
			}

			res, err := curvature.Evaluate(in, &opts)
			if err != nil {
				a.log().Debug("evaluation failed",
					zap.Float64("a", in.A), zap.Float64("b", in.B), zap.Float64("r", in.R),
					zap.Stringer("branch", in.Branch), zap.Error(err))

				return err
			}

			out := cmd.OutOrStdout()
			if terms {
				fmt.Fprintf(out, "branch=%s\neuclid=%g\ncorrection=%g\nradicand=%g\n",
					in.Branch, res.Euclid, res.Correction, res.Radicand)
			}
			fmt.Fprintf(out, "%g\n", res.Distance)

			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&nanOnDomain, "nan-on-domain", false, "Print NaN instead of failing on a negative radicand")
	cmd.Flags().BoolVar(&terms, "terms", false, "Also print the intermediate terms")

	return cmd
}
