package commands

import (
	"github.com/spf13/cobra"

	"consoleapp/internal/demo"
	"consoleapp/internal/fraction"
)

func fractionsCmd() *cobra.Command {
	var a, b string
	cmd := &cobra.Command{
		Use:   "fractions",
		Short: "Run arithmetic and comparisons on a pair of fractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := wire.Samples
			if a != "" {
				f, err := fraction.Parse(a)
				if err != nil {
					return err
				}
				s.A = f
			}
			if b != "" {
				f, err := fraction.Parse(b)
				if err != nil {
					return err
				}
				s.B = f
			}
			return demo.Fractions(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&a, "a", "", `left operand, e.g. "1/2"`)
	cmd.Flags().StringVar(&b, "b", "", `right operand, e.g. "3/4"`)
	return cmd
}
