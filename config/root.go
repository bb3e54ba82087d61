package config

import (
	"fmt"
	"time"
)

// Root is the loaded configuration tree.
//
// A Root is built once by a Loader and is read-only afterwards; concurrent
// reads are safe, writes after loading must be synchronized by the caller.
type Root struct {
	language         *LanguageSection
	unitTestProvider *UnitTestProviderSection
	generator        *GeneratorSection
	runtime          *RuntimeSection
	trace            *TraceSection
}

// New returns a tree with every field set from d.
func New(d Defaults) (*Root, error) {
	root := newRoot()

	if err := root.reset(d); err != nil {
		return nil, err
	}

	root.ResetModified()

	return root, nil
}

// newRoot constructs the sections with their attribute tables; fields are
// left unset until reset.
func newRoot() *Root {
	return &Root{
		language:         newLanguageSection(),
		unitTestProvider: newUnitTestProviderSection(),
		generator:        newGeneratorSection(),
		runtime:          newRuntimeSection(),
		trace:            newTraceSection(),
	}
}

// Language returns the language section.
func (r *Root) Language() *LanguageSection { return r.language }

// UnitTestProvider returns the unit test provider section.
func (r *Root) UnitTestProvider() *UnitTestProviderSection { return r.unitTestProvider }

// Generator returns the generator section.
func (r *Root) Generator() *GeneratorSection { return r.generator }

// Runtime returns the runtime section.
func (r *Root) Runtime() *RuntimeSection { return r.runtime }

// Trace returns the trace section.
func (r *Root) Trace() *TraceSection { return r.trace }

// IsModified reports whether any field was assigned since the tree was loaded.
func (r *Root) IsModified() bool {
	for _, s := range r.sections() {
		if s.IsModified() {
			return true
		}
	}

	return false
}

// ResetModified marks the tree as unmodified.
func (r *Root) ResetModified() {
	for _, s := range r.sections() {
		s.resetModified()
	}
}

func (r *Root) sections() []sectionElement {
	return []sectionElement{r.language, r.unitTestProvider, r.generator, r.runtime, r.trace}
}

func (r *Root) section(name string) (sectionElement, bool) {
	for _, s := range r.sections() {
		if s.ElementName() == name {
			return s, true
		}
	}

	return nil, false
}

func (r *Root) reset(d Defaults) error {
	for _, s := range r.sections() {
		if err := s.reset(d); err != nil {
			return fmt.Errorf("applying defaults: %w", err)
		}
	}

	return nil
}

// Settings is a plain copy of a configuration tree.
type Settings struct {
	Language         LanguageSettings         `json:"language"         yaml:"language"`
	UnitTestProvider UnitTestProviderSettings `json:"unitTestProvider" yaml:"unitTestProvider"`
	Generator        GeneratorSettings        `json:"generator"        yaml:"generator"`
	Runtime          RuntimeSettings          `json:"runtime"          yaml:"runtime"`
	Trace            TraceSettings            `json:"trace"            yaml:"trace"`
}

// LanguageSettings is a copy of LanguageSection.
type LanguageSettings struct {
	Feature string `json:"feature" yaml:"feature"`
	Tool    string `json:"tool"    yaml:"tool"`
}

// UnitTestProviderSettings is a copy of UnitTestProviderSection.
type UnitTestProviderSettings struct {
	Name              string `json:"name"                        yaml:"name"`
	GeneratorProvider string `json:"generatorProvider,omitempty" yaml:"generatorProvider,omitempty"`
	RuntimeProvider   string `json:"runtimeProvider,omitempty"   yaml:"runtimeProvider,omitempty"`
}

// GeneratorSettings is a copy of GeneratorSection.
type GeneratorSettings struct {
	AllowDebugGeneratedFiles bool `json:"allowDebugGeneratedFiles" yaml:"allowDebugGeneratedFiles"`
}

// RuntimeSettings is a copy of RuntimeSection.
type RuntimeSettings struct {
	DetectAmbiguousMatches       bool                         `json:"detectAmbiguousMatches"       yaml:"detectAmbiguousMatches"`
	StopAtFirstError             bool                         `json:"stopAtFirstError"             yaml:"stopAtFirstError"`
	MissingOrPendingStepsOutcome MissingOrPendingStepsOutcome `json:"missingOrPendingStepsOutcome" yaml:"missingOrPendingStepsOutcome"`
}

// TraceSettings is a copy of TraceSection.
type TraceSettings struct {
	TraceSuccessfulSteps  bool          `json:"traceSuccessfulSteps" yaml:"traceSuccessfulSteps"`
	TraceTimings          bool          `json:"traceTimings"         yaml:"traceTimings"`
	MinTracedDuration     time.Duration `json:"-"                    yaml:"-"`
	MinTracedDurationText string        `json:"minTracedDuration"    yaml:"minTracedDuration"`
	Listener              string        `json:"listener,omitempty"   yaml:"listener,omitempty"`
}

// Snapshot copies the current field values.
func (r *Root) Snapshot() Settings {
	return Settings{
		Language: LanguageSettings{
			Feature: r.language.Feature(),
			Tool:    r.language.Tool(),
		},
		UnitTestProvider: UnitTestProviderSettings{
			Name:              r.unitTestProvider.Name(),
			GeneratorProvider: r.unitTestProvider.GeneratorProvider(),
			RuntimeProvider:   r.unitTestProvider.RuntimeProvider(),
		},
		Generator: GeneratorSettings{
			AllowDebugGeneratedFiles: r.generator.AllowDebugGeneratedFiles(),
		},
		Runtime: RuntimeSettings{
			DetectAmbiguousMatches:       r.runtime.DetectAmbiguousMatches(),
			StopAtFirstError:             r.runtime.StopAtFirstError(),
			MissingOrPendingStepsOutcome: r.runtime.MissingOrPendingStepsOutcome(),
		},
		Trace: TraceSettings{
			TraceSuccessfulSteps:  r.trace.TraceSuccessfulSteps(),
			TraceTimings:          r.trace.TraceTimings(),
			MinTracedDuration:     r.trace.MinTracedDuration(),
			MinTracedDurationText: FormatTimeSpan(r.trace.MinTracedDuration()),
			Listener:              r.trace.Listener(),
		},
	}
}
