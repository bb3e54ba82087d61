package config

import "time"

// TraceSection controls what the runtime writes to the trace listener.
type TraceSection struct {
	section

	traceSuccessfulSteps bool
	traceTimings         bool
	minTracedDuration    time.Duration
	listener             string
}

func newTraceSection() *TraceSection {
	s := &TraceSection{}
	s.section = section{name: "trace"}
	s.attrs = []attribute{
		s.boolAttribute("traceSuccessfulSteps", s.SetTraceSuccessfulSteps,
			func(d Defaults) bool { return d.TraceSuccessfulSteps }),
		s.boolAttribute("traceTimings", s.SetTraceTimings,
			func(d Defaults) bool { return d.TraceTimings }),
		stringAttribute("minTracedDuration", s.assignMinTracedDuration,
			func(d Defaults) string { return d.MinTracedDuration }),
		stringAttribute("listener", s.setListener, func(Defaults) string { return "" }),
	}

	return s
}

// TraceSuccessfulSteps reports whether passing steps are traced.
func (s *TraceSection) TraceSuccessfulSteps() bool {
	return s.traceSuccessfulSteps
}

// SetTraceSuccessfulSteps sets TraceSuccessfulSteps.
func (s *TraceSection) SetTraceSuccessfulSteps(v bool) {
	s.traceSuccessfulSteps = v
	s.modified = true
}

// TraceTimings reports whether step durations are traced.
func (s *TraceSection) TraceTimings() bool {
	return s.traceTimings
}

// SetTraceTimings sets TraceTimings.
func (s *TraceSection) SetTraceTimings(v bool) {
	s.traceTimings = v
	s.modified = true
}

// MinTracedDuration is the shortest step duration reported when TraceTimings is on.
func (s *TraceSection) MinTracedDuration() time.Duration {
	return s.minTracedDuration
}

// SetMinTracedDuration sets MinTracedDuration.
func (s *TraceSection) SetMinTracedDuration(v time.Duration) {
	s.minTracedDuration = v
	s.modified = true
}

func (s *TraceSection) assignMinTracedDuration(raw string) error {
	d, err := ParseTimeSpan(raw)
	if err != nil {
		return durationConstraint.violation(s.path("minTracedDuration"), raw)
	}

	s.SetMinTracedDuration(d)

	return nil
}

// Listener returns the type reference of a custom trace listener, or "" for
// the built-in one.
func (s *TraceSection) Listener() string {
	return s.listener
}

// SetListener sets the trace listener type reference.
func (s *TraceSection) SetListener(v string) {
	s.listener = v
	s.modified = true
}

func (s *TraceSection) setListener(v string) error {
	s.SetListener(v)

	return nil
}
