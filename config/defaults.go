package config

// Defaults is the set of values a configuration tree falls back to for every
// field the document does not supply.
type Defaults struct {
	// FeatureLanguage is the culture assumed for feature files when a
	// consumer needs a full culture name.
	FeatureLanguage string
	// LanguageFeature is the default of the language.feature attribute.
	LanguageFeature string
	ToolLanguage    string

	UnitTestProviderName string

	DetectAmbiguousMatches       bool
	StopAtFirstError             bool
	MissingOrPendingStepsOutcome MissingOrPendingStepsOutcome

	TraceSuccessfulSteps bool
	TraceTimings         bool
	// MinTracedDuration uses the same text form as the document attribute.
	MinTracedDuration string

	AllowDebugGeneratedFiles bool
}

// DefaultValues returns the built-in defaults.
func DefaultValues() Defaults {
	return Defaults{
		FeatureLanguage:              "en-US",
		LanguageFeature:              "en",
		ToolLanguage:                 "",
		UnitTestProviderName:         "NUnit",
		DetectAmbiguousMatches:       true,
		StopAtFirstError:             false,
		MissingOrPendingStepsOutcome: OutcomeInconclusive,
		TraceSuccessfulSteps:         true,
		TraceTimings:                 false,
		MinTracedDuration:            "0:0:0.1",
		AllowDebugGeneratedFiles:     false,
	}
}
