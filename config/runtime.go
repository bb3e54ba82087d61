package config

// RuntimeSection controls step matching and how unfinished scenarios are reported.
type RuntimeSection struct {
	section

	detectAmbiguousMatches       bool
	stopAtFirstError             bool
	missingOrPendingStepsOutcome MissingOrPendingStepsOutcome
}

func newRuntimeSection() *RuntimeSection {
	s := &RuntimeSection{}
	s.section = section{name: "runtime"}
	s.attrs = []attribute{
		s.boolAttribute("detectAmbiguousMatches", s.SetDetectAmbiguousMatches,
			func(d Defaults) bool { return d.DetectAmbiguousMatches }),
		s.boolAttribute("stopAtFirstError", s.SetStopAtFirstError,
			func(d Defaults) bool { return d.StopAtFirstError }),
		{
			name:   "missingOrPendingStepsOutcome",
			assign: s.assignOutcome,
			reset: func(d Defaults) error {
				return s.SetMissingOrPendingStepsOutcome(d.MissingOrPendingStepsOutcome)
			},
		},
	}

	return s
}

// DetectAmbiguousMatches reports whether a step matching several step
// definitions is an error.
func (s *RuntimeSection) DetectAmbiguousMatches() bool {
	return s.detectAmbiguousMatches
}

// SetDetectAmbiguousMatches sets DetectAmbiguousMatches.
func (s *RuntimeSection) SetDetectAmbiguousMatches(v bool) {
	s.detectAmbiguousMatches = v
	s.modified = true
}

// StopAtFirstError reports whether the test run stops after the first failing scenario.
func (s *RuntimeSection) StopAtFirstError() bool {
	return s.stopAtFirstError
}

// SetStopAtFirstError sets StopAtFirstError.
func (s *RuntimeSection) SetStopAtFirstError(v bool) {
	s.stopAtFirstError = v
	s.modified = true
}

// MissingOrPendingStepsOutcome returns the outcome reported for scenarios
// with missing or pending steps.
func (s *RuntimeSection) MissingOrPendingStepsOutcome() MissingOrPendingStepsOutcome {
	return s.missingOrPendingStepsOutcome
}

// SetMissingOrPendingStepsOutcome sets the outcome. Values outside the
// defined outcomes are rejected.
func (s *RuntimeSection) SetMissingOrPendingStepsOutcome(v MissingOrPendingStepsOutcome) error {
	if !v.IsValid() {
		return outcomeConstraint.violation(s.path("missingOrPendingStepsOutcome"), v)
	}

	s.missingOrPendingStepsOutcome = v
	s.modified = true

	return nil
}

func (s *RuntimeSection) assignOutcome(raw string) error {
	path := s.path("missingOrPendingStepsOutcome")

	if err := outcomeConstraint.check(path, raw); err != nil {
		return err
	}

	outcome, err := ParseMissingOrPendingStepsOutcome(raw)
	if err != nil {
		return outcomeConstraint.violation(path, raw)
	}

	return s.SetMissingOrPendingStepsOutcome(outcome)
}
