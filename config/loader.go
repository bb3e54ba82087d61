package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/x97mdr/SpecFlow/config/document"
	xmlparser "github.com/x97mdr/SpecFlow/config/parser/xml"
)

// ErrDuplicateElement is returned when a section element occurs more than once.
var ErrDuplicateElement = errors.New("element may only appear once")

// Loader builds configuration trees from documents.
type Loader struct {
	defaults Defaults
	parser   Parser
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDefaults replaces the built-in defaults.
func WithDefaults(d Defaults) LoaderOption {
	return func(l *Loader) {
		l.defaults = d
	}
}

// WithParser sets the parser used by LoadText. XML is used when unset.
func WithParser(p Parser) LoaderOption {
	return func(l *Loader) {
		l.parser = p
	}
}

// WithLogger sets the logger; slog.Default() is used when unset.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	loader := &Loader{
		defaults: DefaultValues(),
	}

	for _, apply := range opts {
		apply(loader)
	}

	if loader.parser == nil {
		loader.parser = xmlparser.NewParser()
	}

	if loader.logger == nil {
		loader.logger = slog.Default()
	}

	return loader
}

// LoadText parses data with the loader's parser and loads the resulting
// document. Blank input yields a tree holding only defaults.
func (l *Loader) LoadText(data []byte) (*Root, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return l.LoadNode(nil)
	}

	node, err := l.parser.Parse(data)
	if err != nil {
		if errors.Is(err, document.ErrEmptyDocument) {
			return l.LoadNode(nil)
		}

		return nil, fmt.Errorf("%w: parsing document: %w", ErrConfiguration, err)
	}

	return l.LoadNode(node)
}

// LoadNode loads an already parsed document. The node's children are the
// section elements; the node's own name is not checked. A nil node yields a
// tree holding only defaults.
func (l *Loader) LoadNode(node *document.Node) (*Root, error) {
	root := newRoot()

	if err := root.reset(l.defaults); err != nil {
		return nil, err
	}

	if node != nil {
		if err := l.populate(root, node); err != nil {
			return nil, err
		}
	}

	root.ResetModified()

	return root, nil
}

func (l *Loader) populate(root *Root, node *document.Node) error {
	seen := make(map[string]bool, len(node.Children))

	for _, child := range node.Children {
		sec, ok := root.section(child.Name)
		if !ok {
			l.logger.Debug("ignoring unrecognized element",
				slog.String("element", child.Name),
				slog.String("position", child.Position.String()),
			)

			continue
		}

		if seen[child.Name] {
			return fmt.Errorf("%w: <%s> %w (line %d, column %d)",
				ErrConfiguration, child.Name, ErrDuplicateElement, child.Position.Line, child.Position.Column)
		}

		seen[child.Name] = true

		if err := l.populateSection(sec, child); err != nil {
			return err
		}

		l.logger.Debug("section applied", slog.String("section", child.Name))
	}

	return nil
}

func (l *Loader) populateSection(sec sectionElement, node *document.Node) error {
	for _, attr := range node.Attrs {
		field, ok := sec.attribute(attr.Name)
		if !ok {
			l.logger.Debug("ignoring unrecognized attribute",
				slog.String("section", node.Name),
				slog.String("attribute", attr.Name),
			)

			continue
		}

		if err := field.assign(attr.Value); err != nil {
			var validationErr *SchemaValidationError
			if errors.As(err, &validationErr) && validationErr.Position.IsZero() {
				validationErr.Position = node.Position
			}

			return err
		}
	}

	for _, child := range node.Children {
		l.logger.Debug("ignoring unrecognized element",
			slog.String("element", node.Name+"."+child.Name),
			slog.String("position", child.Position.String()),
		)
	}

	return nil
}
