package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newValidateCommand(logger *slog.Logger, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check configuration documents against the schema",
		Long: `Load each document and report the first error it contains: syntax
errors, unknown enumeration values, malformed languages or durations and
duplicated sections. The command fails if any document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int

			for _, path := range args {
				if _, err := load(logger, flags, path); err != nil {
					failed++

					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}

			return nil
		},
	}
}
