// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml. The document is parsed into an
// AST so that every element keeps the position of its key, and WithPath uses
// the library's PathString to select a nested section. Colon separated paths
// (e.g. "tools:specFlow") are converted to YAML path format ("$.tools.specFlow").
//
// Mappings become elements and scalars become attributes:
//
//	language:
//	  feature: de-AT
//	runtime:
//	  stopAtFirstError: true
//
// Null values are treated as absent. Sequences are rejected because no
// configuration field holds a list.
package yaml
