// Package config loads the SpecFlow configuration tree.
//
// A configuration document holds up to five section elements (language,
// unitTestProvider, generator, runtime and trace), each carrying its fields
// as attributes. Every field the document leaves out takes its value from an
// injected Defaults value, so a loaded Root always has every field set.
//
// The package has two extension points:
//   - Parser: turns raw text into a document.Node tree (XML, YAML, TOML)
//   - DataFetcher: retrieves the raw text (file, in-memory)
//
// # Path Navigation
//
// Parsers accept a path selecting the configuration element inside a larger
// document. Paths use colon (:) as the separator:
//
//	"configuration:specFlow"    -> <configuration><specFlow>...
//	""                          -> the document root
//
// # Example
//
//	loader := config.NewLoader(config.WithParser(xmlparser.NewParser()))
//	root, err := loader.LoadText([]byte(`<specFlow><language feature="de-AT"/></specFlow>`))
//
// Fields can be changed programmatically after loading; constrained setters
// return a *SchemaValidationError for values the schema rejects. Every error
// produced while loading matches ErrConfiguration with errors.Is.
package config
