// Command specflowcfg inspects and validates SpecFlow configuration documents.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	specflow "github.com/x97mdr/SpecFlow"
	"github.com/x97mdr/SpecFlow/cmd/specflowcfg/commands"
	"github.com/x97mdr/SpecFlow/logging"
)

func main() {
	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: logging.FormatText,
	}, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, logger, specflow.Version, specflow.CompiledAt); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
