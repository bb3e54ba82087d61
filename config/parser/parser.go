// Package parser selects a config.Parser for a configuration file.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/x97mdr/SpecFlow/config"
	tomlparser "github.com/x97mdr/SpecFlow/config/parser/toml"
	xmlparser "github.com/x97mdr/SpecFlow/config/parser/xml"
	yamlparser "github.com/x97mdr/SpecFlow/config/parser/yaml"

	"github.com/BurntSushi/toml"
)

// ErrUnknownFormat is returned for a format name no parser handles.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Format names a configuration document syntax.
type Format string

const (
	// FormatXML is the XML element/attribute form.
	FormatXML Format = "xml"
	// FormatYAML is YAML; JSON documents are read as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML is TOML.
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name. The empty name means "detect".
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "":
		return "", nil
	case FormatXML:
		return FormatXML, nil
	case FormatYAML, "yml", "json":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatForPath derives the format from the file extension. It returns ""
// for extensions that do not determine a format.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".config":
		return FormatXML
	case ".yaml", ".yml", ".json":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	default:
		return ""
	}
}

// DetectFormat guesses the format from the content.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return FormatXML
	}

	var probe map[string]any
	if _, err := toml.Decode(string(trimmed), &probe); err == nil && len(probe) > 0 {
		return FormatTOML
	}

	return FormatYAML
}

// New returns the parser for format. sectionPath selects the configuration
// section inside the document and may be empty.
//
//nolint:ireturn // callers depend on config.Parser only
func New(format Format, sectionPath string) (config.Parser, error) {
	switch format {
	case FormatXML:
		return xmlparser.NewParser(xmlparser.WithPath(sectionPath)), nil
	case FormatYAML:
		return yamlparser.NewParser(yamlparser.WithPath(sectionPath)), nil
	case FormatTOML:
		return tomlparser.NewParser(tomlparser.WithPath(sectionPath)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// ForFile picks the parser for a file from its extension, falling back to
// the content when the extension is not conclusive.
//
//nolint:ireturn // callers depend on config.Parser only
func ForFile(path string, data []byte, sectionPath string) (config.Parser, error) {
	format := FormatForPath(path)
	if format == "" {
		format = DetectFormat(data)
	}

	return New(format, sectionPath)
}
