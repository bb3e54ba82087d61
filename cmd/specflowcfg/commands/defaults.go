package commands

import (
	"github.com/x97mdr/SpecFlow/config"

	"github.com/spf13/cobra"
)

func newDefaultsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the settings used when a document is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := config.New(config.DefaultValues())
			if err != nil {
				return err
			}

			return writeSettings(cmd.OutOrStdout(), output, root.Snapshot())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "output format: yaml or json")

	return cmd
}
