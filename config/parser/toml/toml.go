package toml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/x97mdr/SpecFlow/config/document"

	"github.com/BurntSushi/toml"
)

const rootName = "config"

// Parser implements config.Parser for TOML data.
type Parser struct {
	path string
}

// Option configures a Parser.
type Option func(*Parser)

// WithPath selects a nested table by a colon separated list of table names.
func WithPath(path string) Option {
	return func(p *Parser) {
		p.path = path
	}
}

// NewParser creates a new TOML parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}

	for _, apply := range opts {
		apply(p)
	}

	return p
}

// Parse decodes TOML data into a document tree.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, document.ErrEmptyDocument
	}

	values := make(map[string]any)

	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	if len(values) == 0 {
		return nil, document.ErrEmptyDocument
	}

	name := rootName

	if p.path != "" {
		for _, segment := range strings.Split(p.path, document.PathSeparator) {
			table, ok := values[segment].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s", document.ErrPathNotFound, p.path)
			}

			values = table
			name = segment
		}
	}

	node, err := document.FromMap(name, values)
	if err != nil {
		return nil, fmt.Errorf("converting toml: %w", err)
	}

	return node, nil
}
