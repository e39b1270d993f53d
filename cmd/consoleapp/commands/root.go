package commands

import (
	"github.com/spf13/cobra"

	"consoleapp/internal/app"
)

var (
	samplesPath string
	quiet       bool
	wire        *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Running the root command starts the
// interactive menu on the command's input and output streams.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "consoleapp",
		Short:        "Buildings and fractions demo menu",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{SamplesPath: samplesPath, Quiet: quiet})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Menu.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&samplesPath, "samples", "", "TOML file overriding the demo data (must exist when given)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not print the option list before each prompt")

	root.AddCommand(buildingsCmd(), fractionsCmd())
	return root
}
