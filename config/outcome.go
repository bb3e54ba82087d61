package config

import "fmt"

// MissingOrPendingStepsOutcome selects how a scenario with missing or pending
// step definitions is reported.
type MissingOrPendingStepsOutcome int

const (
	// OutcomeInconclusive reports the scenario as inconclusive.
	OutcomeInconclusive MissingOrPendingStepsOutcome = iota
	// OutcomeIgnore reports the scenario as ignored.
	OutcomeIgnore
	// OutcomeError fails the scenario.
	OutcomeError
)

//nolint:gochecknoglobals // lookup table.
var outcomeNames = map[MissingOrPendingStepsOutcome]string{
	OutcomeInconclusive: "Inconclusive",
	OutcomeIgnore:       "Ignore",
	OutcomeError:        "Error",
}

// ParseMissingOrPendingStepsOutcome converts the document token to an outcome.
// Tokens are case-sensitive.
func ParseMissingOrPendingStepsOutcome(s string) (MissingOrPendingStepsOutcome, error) {
	for outcome, name := range outcomeNames {
		if name == s {
			return outcome, nil
		}
	}

	return 0, fmt.Errorf("unknown outcome %q", s)
}

// String returns the document token of the outcome.
func (o MissingOrPendingStepsOutcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}

	return fmt.Sprintf("MissingOrPendingStepsOutcome(%d)", int(o))
}

// IsValid reports whether o is one of the defined outcomes.
func (o MissingOrPendingStepsOutcome) IsValid() bool {
	_, ok := outcomeNames[o]

	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (o MissingOrPendingStepsOutcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("invalid outcome %d", int(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *MissingOrPendingStepsOutcome) UnmarshalText(text []byte) error {
	outcome, err := ParseMissingOrPendingStepsOutcome(string(text))
	if err != nil {
		return err
	}

	*o = outcome

	return nil
}
