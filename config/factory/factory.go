package factory

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Constructor builds a new instance of a registered type.
type Constructor func() (any, error)

// Registry maps type references to constructors.
//
// Registration normally happens at startup; Create is safe to call from
// concurrent goroutines.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register binds typeRef to ctor.
func (r *Registry) Register(typeRef string, ctor Constructor) error {
	typeRef = strings.TrimSpace(typeRef)
	if typeRef == "" {
		return ErrEmptyTypeReference
	}

	if ctor == nil {
		return fmt.Errorf("registering %q: nil constructor", typeRef)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.constructors[typeRef]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, typeRef)
	}

	r.constructors[typeRef] = ctor

	return nil
}

// RegisterType binds typeRef to the zero-argument construction of *T.
func RegisterType[T any](r *Registry, typeRef string) error {
	return r.Register(typeRef, func() (any, error) {
		return new(T), nil
	})
}

// Names returns the registered type references in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Create constructs the type named by typeRef and checks that it implements
// capability, which must be an interface type. A nil capability skips the check.
//
// An assembly-qualified reference ("Type, Assembly") matches its exact
// registration first and the bare type name otherwise.
func (r *Registry) Create(typeRef string, capability reflect.Type) (any, error) {
	ctor, err := r.lookup(typeRef)
	if err != nil {
		return nil, &ProviderInstantiationError{TypeRef: typeRef, Err: err}
	}

	if capability != nil && capability.Kind() != reflect.Interface {
		return nil, &ProviderInstantiationError{
			TypeRef: typeRef,
			Err:     fmt.Errorf("%w: %s", ErrNotInterface, capability),
		}
	}

	instance, err := construct(ctor)
	if err != nil {
		return nil, &ProviderInstantiationError{TypeRef: typeRef, Err: err}
	}

	if isNil(instance) {
		return nil, &ProviderInstantiationError{TypeRef: typeRef, Err: ErrNilInstance}
	}

	if capability != nil && !reflect.TypeOf(instance).Implements(capability) {
		return nil, &CapabilityMismatchError{TypeRef: typeRef, Capability: capability}
	}

	return instance, nil
}

// CreateInstance constructs the type named by typeRef as a T, where T is the
// interface the instance must implement.
func CreateInstance[T any](r *Registry, typeRef string) (T, error) {
	var zero T

	capability := reflect.TypeOf((*T)(nil)).Elem()
	if capability.Kind() != reflect.Interface {
		capability = nil
	}

	instance, err := r.Create(typeRef, capability)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, &CapabilityMismatchError{TypeRef: typeRef, Capability: reflect.TypeOf((*T)(nil)).Elem()}
	}

	return typed, nil
}

func (r *Registry) lookup(typeRef string) (Constructor, error) {
	typeRef = strings.TrimSpace(typeRef)
	if typeRef == "" {
		return nil, ErrEmptyTypeReference
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if ctor, ok := r.constructors[typeRef]; ok {
		return ctor, nil
	}

	if typeName, _, qualified := strings.Cut(typeRef, ","); qualified {
		if ctor, ok := r.constructors[strings.TrimSpace(typeName)]; ok {
			return ctor, nil
		}
	}

	return nil, ErrTypeNotFound
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch value := reflect.ValueOf(v); value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}

// construct runs ctor, turning a panic into an error.
func construct(ctor Constructor) (instance any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("constructor panicked: %v", recovered)
		}
	}()

	return ctor()
}
