package factory

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/x97mdr/SpecFlow/config"
)

var (
	// ErrTypeNotFound is the cause of a ProviderInstantiationError for a type
	// reference with no registered constructor.
	ErrTypeNotFound = errors.New("type not registered")

	// ErrEmptyTypeReference is returned when registering or creating the empty type reference.
	ErrEmptyTypeReference = errors.New("empty type reference")

	// ErrDuplicateType is returned when a type reference is registered twice.
	ErrDuplicateType = errors.New("type already registered")

	// ErrNilInstance is the cause of a ProviderInstantiationError for a
	// constructor that returned nil without an error.
	ErrNilInstance = errors.New("constructor returned nil")

	// ErrNotInterface is the cause of a ProviderInstantiationError for a
	// capability that is not an interface type.
	ErrNotInterface = errors.New("capability is not an interface type")
)

// ProviderInstantiationError reports that a configured type could not be
// constructed.
type ProviderInstantiationError struct {
	TypeRef string
	Err     error
}

// Error implements the error interface.
func (e *ProviderInstantiationError) Error() string {
	return fmt.Sprintf("unable to create instance of type '%s': %v", e.TypeRef, e.Err)
}

// Unwrap returns the cause.
func (e *ProviderInstantiationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is config.ErrConfiguration.
func (e *ProviderInstantiationError) Is(target error) bool {
	return target == config.ErrConfiguration
}

// CapabilityMismatchError reports that a constructed instance does not
// implement the interface it was requested as.
type CapabilityMismatchError struct {
	TypeRef    string
	Capability reflect.Type
}

// Error implements the error interface.
func (e *CapabilityMismatchError) Error() string {
	return fmt.Sprintf("the specified type '%s' does not implement interface '%s'", e.TypeRef, capabilityName(e.Capability))
}

// Is reports whether target is config.ErrConfiguration.
func (e *CapabilityMismatchError) Is(target error) bool {
	return target == config.ErrConfiguration
}

func capabilityName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
