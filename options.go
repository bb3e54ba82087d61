package specflow

import (
	"github.com/x97mdr/SpecFlow/config"
	"github.com/x97mdr/SpecFlow/config/factory"
	"github.com/x97mdr/SpecFlow/config/parser"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string

	// ConfigFile is the configuration document to load. When both ConfigFile
	// and ConfigText are empty, the defaults are used.
	ConfigFile string
	// AllowMissingConfig treats a nonexistent ConfigFile as an empty document.
	AllowMissingConfig bool
	ConfigText         string
	// ConfigFormat is the syntax of ConfigText, or of ConfigFile when its
	// extension is not conclusive. Empty means detect from content.
	ConfigFormat parser.Format
	// SectionPath selects the configuration element inside the document.
	SectionPath string

	Defaults  *config.Defaults
	Providers []ProviderRegistration
}

// ProviderRegistration binds a type reference used in the configuration to
// the constructor that builds it.
type ProviderRegistration struct {
	TypeRef     string
	Constructor factory.Constructor
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithConfigFile loads the configuration from path. The parser is chosen by
// file extension.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
		opts.ConfigText = ""
	}
}

// WithOptionalConfigFile is WithConfigFile for a file that may not exist.
func WithOptionalConfigFile(path string) Option {
	return func(opts *Options) {
		WithConfigFile(path)(opts)
		opts.AllowMissingConfig = true
	}
}

// WithConfigText loads the configuration from text in the given format.
// An empty format detects it from the content.
func WithConfigText(format parser.Format, text string) Option {
	return func(opts *Options) {
		opts.ConfigText = text
		opts.ConfigFormat = format
		opts.ConfigFile = ""
	}
}

// WithSectionPath selects the configuration element inside the document,
// e.g. "configuration:specFlow".
func WithSectionPath(path string) Option {
	return func(opts *Options) {
		opts.SectionPath = path
	}
}

// WithDefaults replaces the built-in defaults.
func WithDefaults(defaults config.Defaults) Option {
	return func(opts *Options) {
		opts.Defaults = &defaults
	}
}

// WithProvider registers a constructor for a type reference that the
// configuration may name as generator provider, runtime provider or trace
// listener.
func WithProvider(typeRef string, ctor factory.Constructor) Option {
	return func(opts *Options) {
		opts.Providers = append(opts.Providers, ProviderRegistration{TypeRef: typeRef, Constructor: ctor})
	}
}
