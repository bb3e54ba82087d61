package document

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/x97mdr/SpecFlow/syntax"
)

// ErrEmptyDocument is returned by parsers when the input holds no document.
var ErrEmptyDocument = errors.New("empty document")

// ErrPathNotFound is returned when a navigation path does not name an element.
var ErrPathNotFound = errors.New("path not found")

// PathSeparator separates element names in a navigation path.
const PathSeparator = ":"

// Attr is a single name/value attribute of an element.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of a configuration document.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Position syntax.FilePosition
}

// NewNode returns an element with the given name and attributes.
func NewNode(name string, attrs ...Attr) *Node {
	return &Node{
		Name:  name,
		Attrs: attrs,
	}
}

// Append adds children to the node and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)

	return n
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}

	return nil
}

// Find walks a colon separated path of child element names starting below n.
// An empty path returns n itself.
func (n *Node) Find(path string) (*Node, error) {
	if path == "" {
		return n, nil
	}

	current := n

	for _, name := range strings.Split(path, PathSeparator) {
		next := current.Child(name)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = next
	}

	return current, nil
}

// FromMap converts a decoded map into an element tree. Nested maps become
// child elements, scalar values become attributes and nil values are
// dropped. Keys are visited in sorted order so the result is deterministic.
func FromMap(name string, values map[string]any) (*Node, error) {
	node := NewNode(name)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		switch value := values[key].(type) {
		case nil:
			continue
		case map[string]any:
			child, err := FromMap(key, value)
			if err != nil {
				return nil, err
			}

			node.Children = append(node.Children, child)
		default:
			text, err := scalarText(value)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", name, key, err)
			}

			node.Attrs = append(node.Attrs, Attr{Name: key, Value: text})
		}
	}

	return node, nil
}

func scalarText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", value)
	}
}
