package config

import "strconv"

// attribute binds a document attribute name to the typed field behind it.
type attribute struct {
	name string
	// assign coerces the document text, validates it and stores it.
	assign func(raw string) error
	// reset stores the field's default.
	reset func(d Defaults) error
}

// section is the state shared by every element of the configuration tree.
type section struct {
	name     string
	attrs    []attribute
	modified bool
}

// ElementName returns the document element name of the section.
func (s *section) ElementName() string {
	return s.name
}

// IsModified reports whether a field was assigned since the last freeze.
func (s *section) IsModified() bool {
	return s.modified
}

func (s *section) resetModified() {
	s.modified = false
}

func (s *section) attribute(name string) (attribute, bool) {
	for _, attr := range s.attrs {
		if attr.name == name {
			return attr, true
		}
	}

	return attribute{}, false
}

func (s *section) reset(d Defaults) error {
	for _, attr := range s.attrs {
		if err := attr.reset(d); err != nil {
			return err
		}
	}

	return nil
}

func (s *section) path(attr string) string {
	return s.name + "." + attr
}

// boolAttribute builds an attribute over a bool field.
func (s *section) boolAttribute(name string, set func(bool), def func(Defaults) bool) attribute {
	return attribute{
		name: name,
		assign: func(raw string) error {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return boolConstraint.violation(s.path(name), raw)
			}

			set(v)

			return nil
		},
		reset: func(d Defaults) error {
			set(def(d))

			return nil
		},
	}
}

// stringAttribute builds an attribute over a string field.
func stringAttribute(name string, set func(string) error, def func(Defaults) string) attribute {
	return attribute{
		name:   name,
		assign: set,
		reset: func(d Defaults) error {
			return set(def(d))
		},
	}
}

// sectionElement is implemented by every section of Root.
type sectionElement interface {
	ElementName() string
	IsModified() bool
	resetModified()
	attribute(name string) (attribute, bool)
	reset(d Defaults) error
}
