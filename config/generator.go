package config

// GeneratorSection holds code generation flags.
type GeneratorSection struct {
	section

	allowDebugGeneratedFiles bool
}

func newGeneratorSection() *GeneratorSection {
	s := &GeneratorSection{}
	s.section = section{name: "generator"}
	s.attrs = []attribute{
		s.boolAttribute("allowDebugGeneratedFiles", s.SetAllowDebugGeneratedFiles,
			func(d Defaults) bool { return d.AllowDebugGeneratedFiles }),
	}

	return s
}

// AllowDebugGeneratedFiles reports whether the debugger may step into generated test code.
func (s *GeneratorSection) AllowDebugGeneratedFiles() bool {
	return s.allowDebugGeneratedFiles
}

// SetAllowDebugGeneratedFiles sets AllowDebugGeneratedFiles.
func (s *GeneratorSection) SetAllowDebugGeneratedFiles(v bool) {
	s.allowDebugGeneratedFiles = v
	s.modified = true
}
