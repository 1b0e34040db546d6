package rtspclient

import "github.com/JaredHane98/RTSP-CLIENT/engine"

// Stage is a handle to one processing element plus its optional capability
// filter. A Stage is either fully valid (created and attached to exactly one
// graph) or absent from the registry; no partially-constructed handles are
// ever stored.
//
// Stages are owned by the Pipeline that created them for the graph's whole
// lifetime. There is no individual removal operation.
type Stage struct {
	name    string
	factory string
	el      engine.Element

	// filter is the declared capability filter for this stage's downstream
	// link. It is consumed (and released) exactly once at link time.
	filter     engine.Caps
	filterDesc string
}

// Name returns the stage's symbolic name, unique within its graph.
func (s *Stage) Name() string { return s.name }

// Factory returns the plugin type the stage was created from.
func (s *Stage) Factory() string { return s.factory }

// HasFilter reports whether the stage still holds an unconsumed capability
// filter.
func (s *Stage) HasFilter() bool { return s.filter != nil }

// takeFilter transfers the declared filter out of the stage. After a
// successful take the stage holds no filter; the caller must release the
// caps exactly once.
func (s *Stage) takeFilter() (engine.Caps, string, bool) {
	if s.filter == nil {
		return nil, "", false
	}
	c, desc := s.filter, s.filterDesc
	s.filter = nil
	return c, desc, true
}
