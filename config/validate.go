package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// culturePattern is the accepted form of a language or culture name, as
// shown in validation errors.
const culturePattern = `\w{2}(-\w{2})?`

// wordChar is a Unicode word character: letters, nonspacing marks, decimal
// digits and connector punctuation. Go's \w is ASCII only.
const wordChar = `[\p{L}\p{Mn}\p{Nd}\p{Pc}]`

//nolint:gochecknoglobals // compiled once.
var cultureRegexp = regexp.MustCompile(`^` + wordChar + `{2}(-` + wordChar + `{2})?$`)

//nolint:gochecknoglobals // validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	err := v.RegisterValidation("culture", func(fl validator.FieldLevel) bool {
		return cultureRegexp.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return v
}

// constraint is a validator tag together with the text shown when a value
// does not satisfy it.
type constraint struct {
	tag         string
	description string
}

//nolint:gochecknoglobals // fixed schema constraints.
var (
	cultureConstraint = constraint{
		tag:         "culture",
		description: "must match pattern " + culturePattern,
	}
	optionalCultureConstraint = constraint{
		tag:         "omitempty,culture",
		description: "must match pattern " + culturePattern + " or be empty",
	}
	requiredStringConstraint = constraint{
		tag:         "min=1",
		description: "must be at least 1 character long",
	}
	outcomeConstraint = constraint{
		tag:         "oneof=Inconclusive Ignore Error",
		description: "must be one of Inconclusive, Ignore, Error",
	}
	boolConstraint = constraint{
		description: "must be a boolean (true or false)",
	}
	durationConstraint = constraint{
		description: "must be a time span such as 0:0:0.1",
	}
)

// check validates value against c and returns a SchemaValidationError for
// path when it does not pass.
func (c constraint) check(path string, value any) error {
	if c.tag == "" {
		return nil
	}

	if err := validate.Var(value, c.tag); err != nil {
		return c.violation(path, value)
	}

	return nil
}

func (c constraint) violation(path string, value any) *SchemaValidationError {
	return &SchemaValidationError{
		Path:       path,
		Value:      value,
		Constraint: c.description,
	}
}
