package config

// LanguageSection holds the languages of feature files and of tool output.
type LanguageSection struct {
	section

	feature string
	tool    string
}

func newLanguageSection() *LanguageSection {
	s := &LanguageSection{}
	s.section = section{
		name: "language",
		attrs: []attribute{
			stringAttribute("feature", s.SetFeature, func(d Defaults) string { return d.LanguageFeature }),
			stringAttribute("tool", s.SetTool, func(d Defaults) string { return d.ToolLanguage }),
		},
	}

	return s
}

// Feature returns the language feature files are written in, e.g. "en" or "de-AT".
func (s *LanguageSection) Feature() string {
	return s.feature
}

// SetFeature sets the feature language. The value must match \w{2}(-\w{2})?.
func (s *LanguageSection) SetFeature(v string) error {
	if err := cultureConstraint.check(s.path("feature"), v); err != nil {
		return err
	}

	s.feature = v
	s.modified = true

	return nil
}

// Tool returns the language of generated messages; empty means the feature language.
func (s *LanguageSection) Tool() string {
	return s.tool
}

// SetTool sets the tool language. The value must be empty or match \w{2}(-\w{2})?.
func (s *LanguageSection) SetTool(v string) error {
	if err := optionalCultureConstraint.check(s.path("tool"), v); err != nil {
		return err
	}

	s.tool = v
	s.modified = true

	return nil
}
