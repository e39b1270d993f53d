package commands

import (
	"github.com/spf13/cobra"

	"consoleapp/internal/demo"
)

func buildingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buildings",
		Short: "Describe the sample buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Buildings(cmd.OutOrStdout(), wire.Samples)
		},
	}
}
