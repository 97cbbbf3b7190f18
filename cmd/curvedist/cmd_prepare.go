package main

import (
	"fmt"

	"github.com/katalvlaran/curvedist/prep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPrepareCmd(a *app) *cobra.Command {
	var flags inputFlags
	opts := prep.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Print the initial basis state selected by the curvature comparison",
		Long: `prepare compares the corrected distance with the flat one and prints the
initial computational-basis label of the register: qubit --target is flipped
when the corrected distance is longer. Labels are little-endian (qubit 0
right-most).`,
		Example: `  curvedist prepare --a 3 --b 4 --r 10          # |00001>
  curvedist prepare --a 3 --b 4 --r 10 --minus  # |00000>`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := flags.input()
			st, err := prep.Prepare(in, &opts)
			if err != nil {
				return err
			}
			a.log().Debug("prepared state",
				zap.Stringer("branch", in.Branch),
				zap.Int("qubits", st.Qubits),
				zap.Bool("flipped", st.Bit(opts.Target) == 1))
			fmt.Fprintf(cmd.OutOrStdout(), "|%s>\n", st)

			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&opts.Qubits, "qubits", opts.Qubits, "Register width")
	cmd.Flags().IntVar(&opts.Target, "target", opts.Target, "Qubit flipped when the corrected distance is longer")

	return cmd
}
