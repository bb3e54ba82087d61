package config

// UnitTestProviderSection selects the unit test framework generated tests
// target, and optionally overrides the generator and runtime providers with
// type references resolved through the instance factory.
type UnitTestProviderSection struct {
	section

	providerName      string
	generatorProvider string
	runtimeProvider   string
}

func newUnitTestProviderSection() *UnitTestProviderSection {
	s := &UnitTestProviderSection{}
	s.section = section{
		name: "unitTestProvider",
		attrs: []attribute{
			stringAttribute("name", s.SetName, func(d Defaults) string { return d.UnitTestProviderName }),
			stringAttribute("generatorProvider", s.setGeneratorProvider, func(Defaults) string { return "" }),
			stringAttribute("runtimeProvider", s.setRuntimeProvider, func(Defaults) string { return "" }),
		},
	}

	return s
}

// Name returns the unit test provider name, e.g. "NUnit".
func (s *UnitTestProviderSection) Name() string {
	return s.providerName
}

// SetName sets the provider name. The name is required and cannot be empty.
func (s *UnitTestProviderSection) SetName(v string) error {
	if err := requiredStringConstraint.check(s.path("name"), v); err != nil {
		return err
	}

	s.providerName = v
	s.modified = true

	return nil
}

// GeneratorProvider returns the type reference of a custom generator
// provider, or "" when none is configured.
func (s *UnitTestProviderSection) GeneratorProvider() string {
	return s.generatorProvider
}

// SetGeneratorProvider sets the generator provider type reference.
func (s *UnitTestProviderSection) SetGeneratorProvider(v string) {
	s.generatorProvider = v
	s.modified = true
}

func (s *UnitTestProviderSection) setGeneratorProvider(v string) error {
	s.SetGeneratorProvider(v)

	return nil
}

// RuntimeProvider returns the type reference of a custom runtime provider,
// or "" when none is configured.
func (s *UnitTestProviderSection) RuntimeProvider() string {
	return s.runtimeProvider
}

// SetRuntimeProvider sets the runtime provider type reference.
func (s *UnitTestProviderSection) SetRuntimeProvider(v string) {
	s.runtimeProvider = v
	s.modified = true
}

func (s *UnitTestProviderSection) setRuntimeProvider(v string) error {
	s.SetRuntimeProvider(v)

	return nil
}
