package config

import (
	"errors"
	"fmt"

	"github.com/x97mdr/SpecFlow/syntax"
)

// ErrConfiguration is matched by every configuration error, whether it comes
// from loading, from field assignment or from the instance factory.
var ErrConfiguration = errors.New("configuration error")

// SchemaValidationError reports a value that violates the constraint of the
// field it was assigned to.
type SchemaValidationError struct {
	// Path is the field path, e.g. "language.feature".
	Path string

	// Value is the offending value.
	Value any

	// Constraint describes what the field accepts.
	Constraint string

	// Position locates the value in the source document when known.
	Position syntax.FilePosition
}

// Error implements the error interface.
func (e *SchemaValidationError) Error() string {
	msg := fmt.Sprintf("invalid value %q for %s: %s", fmt.Sprint(e.Value), e.Path, e.Constraint)
	if e.Position.IsZero() {
		return msg
	}

	return fmt.Sprintf("%s (line %d, column %d)", msg, e.Position.Line, e.Position.Column)
}

// Is reports whether target is ErrConfiguration.
func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrConfiguration
}
