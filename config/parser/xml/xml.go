package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/x97mdr/SpecFlow/config/document"
	"github.com/x97mdr/SpecFlow/syntax"
)

// ErrMultipleRoots is returned when the input holds more than one root element.
var ErrMultipleRoots = errors.New("multiple root elements")

// Parser implements config.Parser for XML documents.
type Parser struct {
	path string
}

// Option configures a Parser.
type Option func(*Parser)

// WithPath selects the configuration element below the document root.
func WithPath(path string) Option {
	return func(p *Parser) {
		p.path = path
	}
}

// NewParser creates a new XML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes data into a document tree.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, document.ErrEmptyDocument
	}

	root, err := decode(data)
	if err != nil {
		return nil, err
	}

	node, err := root.Find(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading path %q: %w", p.path, err)
	}

	return node, nil
}

func decode(data []byte) (*document.Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *document.Node
		stack []*document.Node
	)

	for {
		line, column := decoder.InputPos()

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &document.Node{
				Name:     t.Name.Local,
				Attrs:    attributes(t.Attr),
				Position: syntax.NewFilePosition(line, column),
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: <%s> at line %d", ErrMultipleRoots, node.Name, line)
				}

				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}

			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, document.ErrEmptyDocument
	}

	return root, nil
}

// attributes drops namespace declarations and strips prefixes.
func attributes(attrs []xml.Attr) []document.Attr {
	result := make([]document.Attr, 0, len(attrs))

	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns") {
			continue
		}

		result = append(result, document.Attr{Name: attr.Name.Local, Value: attr.Value})
	}

	return result
}
