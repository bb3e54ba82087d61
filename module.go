package specflow

import (
	"fmt"
	"log/slog"

	"github.com/x97mdr/SpecFlow/config"
	"github.com/x97mdr/SpecFlow/config/factory"
	filefetcher "github.com/x97mdr/SpecFlow/config/fetcher/file"
	textfetcher "github.com/x97mdr/SpecFlow/config/fetcher/text"
	"github.com/x97mdr/SpecFlow/config/parser"

	"go.uber.org/fx"
)

const configModuleName = "specflow-config"

// newConfigModule creates the Fx module that loads the configuration tree and
// builds the provider registry.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func newConfigModule(options *Options) fx.Option {
	defaults := config.DefaultValues()
	if options.Defaults != nil {
		defaults = *options.Defaults
	}

	return fx.Module(configModuleName,
		fx.Supply(defaults),
		fx.Provide(newRegistry(options.Providers)),
		fetcherProvider(options),
		fx.Provide(parserProvider(options)),
		fx.Provide(func(d config.Defaults, logger *slog.Logger, p config.Parser, f config.DataFetcher) (*config.Root, error) {
			return config.Provider(config.WithDefaults(d), config.WithLogger(logger))(p, f)
		}),
	)
}

func newRegistry(providers []ProviderRegistration) func() (*factory.Registry, error) {
	return func() (*factory.Registry, error) {
		registry := factory.NewRegistry()

		for _, p := range providers {
			if err := registry.Register(p.TypeRef, p.Constructor); err != nil {
				return nil, fmt.Errorf("registering provider: %w", err)
			}
		}

		return registry, nil
	}
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func fetcherProvider(options *Options) fx.Option {
	if options.ConfigFile != "" {
		var fetcherOpts []filefetcher.Option
		if options.AllowMissingConfig {
			fetcherOpts = append(fetcherOpts, filefetcher.AllowMissing())
		}

		return fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(options.ConfigFile, fetcherOpts...),
				fx.As(new(config.DataFetcher)),
			),
		)
	}

	return fx.Provide(
		fx.Annotate(
			func() *textfetcher.Fetcher { return textfetcher.NewFetcher(options.ConfigText) },
			fx.As(new(config.DataFetcher)),
		),
	)
}

func parserProvider(options *Options) func(config.DataFetcher) (config.Parser, error) {
	return func(fetcher config.DataFetcher) (config.Parser, error) {
		if options.ConfigFile != "" && options.ConfigFormat == "" {
			data, err := fetcher.Fetch()
			if err != nil {
				return nil, fmt.Errorf("reading data error: %w", err)
			}

			return parser.ForFile(options.ConfigFile, data, options.SectionPath)
		}

		format := options.ConfigFormat
		if format == "" {
			data, err := fetcher.Fetch()
			if err != nil {
				return nil, fmt.Errorf("reading data error: %w", err)
			}

			format = parser.DetectFormat(data)
		}

		return parser.New(format, options.SectionPath)
	}
}
