package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newShowCommand(logger *slog.Logger, flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the effective settings of a configuration document",
		Example: `  # Settings from a standalone document
  specflowcfg show specflow.yaml

  # The specFlow section of an app.config, as JSON
  specflowcfg show --path configuration:specFlow --output json App.config`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := load(logger, flags, args[0])
			if err != nil {
				return err
			}

			return writeSettings(cmd.OutOrStdout(), output, root.Snapshot())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml or json")

	return cmd
}
