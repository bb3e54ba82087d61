package config

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/x97mdr/SpecFlow/config/document"
)

// Parser converts raw configuration text into a document tree.
//
// Implementations live in config/parser/xml, config/parser/yaml and
// config/parser/toml. They return document.ErrEmptyDocument for input that
// holds no document, which the loader treats as "all defaults".
type Parser interface {
	Parse(data []byte) (*document.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads, parses, defaults and validates the
// configuration, in the shape expected by fx.Provide.
func Provider(opts ...LoaderOption) func(Parser, DataFetcher) (*Root, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*Root, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		loader := NewLoader(append(slices.Clip(opts), WithParser(parser))...)

		root, err := loader.LoadText(data)
		if err != nil {
			return nil, err
		}

		loader.logger.Info("configuration loaded",
			slog.String("featureLanguage", root.Language().Feature()),
			slog.String("unitTestProvider", root.UnitTestProvider().Name()),
			slog.String("missingOrPendingStepsOutcome", root.Runtime().MissingOrPendingStepsOutcome().String()),
		)

		return root, nil
	}
}
