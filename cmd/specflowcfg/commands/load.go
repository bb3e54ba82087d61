package commands

import (
	"fmt"
	"log/slog"

	"github.com/x97mdr/SpecFlow/config"
	filefetcher "github.com/x97mdr/SpecFlow/config/fetcher/file"
	"github.com/x97mdr/SpecFlow/config/parser"
)

// load reads the document at path and builds the configuration tree.
func load(logger *slog.Logger, flags *globalFlags, path string) (*config.Root, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	p, err := selectParser(flags, fetcher.Path(), data)
	if err != nil {
		return nil, err
	}

	return config.Provider(config.WithLogger(logger))(p, fetcher)
}

//nolint:ireturn // callers depend on config.Parser only
func selectParser(flags *globalFlags, path string, data []byte) (config.Parser, error) {
	format, err := parser.ParseFormat(flags.inputFormat)
	if err != nil {
		return nil, err
	}

	if format == "" {
		return parser.ForFile(path, data, flags.sectionPath)
	}

	return parser.New(format, flags.sectionPath)
}
