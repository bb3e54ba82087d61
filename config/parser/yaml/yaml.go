package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/x97mdr/SpecFlow/config/document"
	"github.com/x97mdr/SpecFlow/syntax"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrUnsupportedValue is returned for values that cannot map to an element or attribute.
var ErrUnsupportedValue = errors.New("unsupported value")

// rootName names the root element of documents read without a path.
const rootName = "config"

// Parser implements config.Parser for YAML data.
type Parser struct {
	path string
}

// Option configures a Parser.
type Option func(*Parser)

// WithPath selects the configuration mapping inside the document. The path
// uses colon (:) as separator.
func WithPath(path string) Option {
	return func(p *Parser) {
		p.path = path
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}

	for _, apply := range opts {
		apply(p)
	}

	return p
}

// Parse parses YAML data into a document tree.
func (p *Parser) Parse(data []byte) (*document.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, document.ErrEmptyDocument
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, document.ErrEmptyDocument
	}

	if _, ok := file.Docs[0].Body.(*ast.CommentGroupNode); ok {
		return nil, document.ErrEmptyDocument
	}

	body := file.Docs[0].Body
	name := rootName

	if p.path != "" {
		body, err = p.navigate(file)
		if err != nil {
			return nil, err
		}

		parts := strings.Split(p.path, document.PathSeparator)
		name = parts[len(parts)-1]
	}

	return toNode(name, body, position(body))
}

func (p *Parser) navigate(file *ast.File) (ast.Node, error) {
	pathObj, err := yaml.PathString(convertToYAMLPath(p.path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p.path, err)
	}

	node, err := pathObj.FilterFile(file)
	if err != nil {
		if isKeyNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", document.ErrPathNotFound, p.path)
		}

		return nil, fmt.Errorf("reading path %q: %w", p.path, err)
	}

	return node, nil
}

func toNode(name string, n ast.Node, pos syntax.FilePosition) (*document.Node, error) {
	node := &document.Node{Name: name, Position: pos}

	switch v := unwrap(n).(type) {
	case *ast.MappingNode:
		for _, entry := range v.Values {
			if err := addEntry(node, entry); err != nil {
				return nil, err
			}
		}
	case *ast.MappingValueNode:
		if err := addEntry(node, v); err != nil {
			return nil, err
		}
	case *ast.NullNode:
	default:
		return nil, fmt.Errorf("%w: %s at line %d is not a mapping", ErrUnsupportedValue, name, pos.Line)
	}

	return node, nil
}

func addEntry(node *document.Node, entry *ast.MappingValueNode) error {
	keyToken := entry.Key.GetToken()
	if keyToken == nil {
		return fmt.Errorf("%w: missing key in %s", ErrUnsupportedValue, node.Name)
	}

	key := keyToken.Value
	keyPos := position(entry.Key)

	switch value := unwrap(entry.Value).(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		child, err := toNode(key, value, keyPos)
		if err != nil {
			return err
		}

		node.Children = append(node.Children, child)
	case *ast.NullNode:
	case *ast.StringNode:
		node.Attrs = append(node.Attrs, document.Attr{Name: key, Value: value.Value})
	case *ast.LiteralNode:
		node.Attrs = append(node.Attrs, document.Attr{Name: key, Value: value.Value.Value})
	case ast.ScalarNode:
		node.Attrs = append(node.Attrs, document.Attr{Name: key, Value: value.GetToken().Value})
	default:
		return fmt.Errorf("%w: %s.%s at line %d", ErrUnsupportedValue, node.Name, key, keyPos.Line)
	}

	return nil
}

// unwrap strips anchors and tags.
func unwrap(n ast.Node) ast.Node {
	for {
		switch v := n.(type) {
		case *ast.AnchorNode:
			n = v.Value
		case *ast.TagNode:
			n = v.Value
		default:
			return n
		}
	}
}

func position(n ast.Node) syntax.FilePosition {
	token := n.GetToken()
	if token == nil || token.Position == nil {
		return syntax.FilePosition{}
	}

	return syntax.NewFilePosition(token.Position.Line, token.Position.Column)
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "tools:specFlow" -> "$.tools.specFlow"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, document.PathSeparator)

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
