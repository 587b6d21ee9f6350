// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Region is one block comment located in a source text: a start marker, the
// nearest following end marker, and the body between them.
type Region struct {
	// Start is the byte offset of the start marker in the source.
	Start int `json:"start" yaml:"start"`

	// End is the byte offset just past the end marker.
	End int `json:"end" yaml:"end"`

	// Line is the 1-based line on which the start marker appears.
	Line int `json:"line" yaml:"line"`

	// Body is the text strictly between the markers.
	Body string `json:"body" yaml:"body"`

	// Multiline reports whether Body contains a newline.
	Multiline bool `json:"multiline" yaml:"multiline"`

	// Emitted is the number of line comments the region converts to.
	Emitted int `json:"emitted" yaml:"emitted"`

	// Dropped is the number of body lines that were empty after stripping
	// the continuation marker and so produced no output.
	Dropped int `json:"dropped" yaml:"dropped"`

	// Replacement is the converted line-comment text for the region.
	Replacement string `json:"replacement" yaml:"replacement"`
}

// Stats summarizes a conversion of one source text.
type Stats struct {
	Regions      int `json:"regions" yaml:"regions"`
	SingleLine   int `json:"single_line" yaml:"single_line"`
	MultiLine    int `json:"multi_line" yaml:"multi_line"`
	LinesEmitted int `json:"lines_emitted" yaml:"lines_emitted"`
	LinesDropped int `json:"lines_dropped" yaml:"lines_dropped"`
}

// Add folds a region into the counters.
func (s *Stats) Add(r Region) {
	s.Regions++
	if r.Multiline {
		s.MultiLine++
	} else {
		s.SingleLine++
	}
	s.LinesEmitted += r.Emitted
	s.LinesDropped += r.Dropped
}
