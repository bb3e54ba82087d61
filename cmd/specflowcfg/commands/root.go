// Package commands implements the specflowcfg subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	sectionPath string
	inputFormat string
}

// Execute runs the root command.
func Execute(ctx context.Context, logger *slog.Logger, version, compiledAt string) error {
	return NewRootCommand(logger, version, compiledAt).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(logger *slog.Logger, version, compiledAt string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "specflowcfg",
		Short: "Inspect and validate SpecFlow configuration",
		Long: `specflowcfg loads a SpecFlow configuration document (XML, YAML or TOML),
applies the defaults and reports the effective settings or the first
validation error.`,
		Version:       fmt.Sprintf("%s (built: %s)", version, compiledAt),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.sectionPath, "path", "p", "",
		"configuration element inside the document, e.g. configuration:specFlow")
	rootCmd.PersistentFlags().StringVar(&flags.inputFormat, "input-format", "",
		"document syntax: xml, yaml or toml (default: from extension or content)")

	rootCmd.AddCommand(newShowCommand(logger, flags))
	rootCmd.AddCommand(newValidateCommand(logger, flags))
	rootCmd.AddCommand(newDefaultsCommand())

	return rootCmd
}
