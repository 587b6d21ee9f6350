// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one file.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// FileResult describes a single input/output conversion.
type FileResult struct {
	// Input is the path the source text was read from.
	Input string `json:"input" yaml:"input"`

	// Output is the path the converted text was written to.
	Output string `json:"output" yaml:"output"`

	// Status is the conversion outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Stats holds region counters for the converted text.
	Stats Stats `json:"stats" yaml:"stats"`

	// BytesIn and BytesOut are the sizes of the source and output text.
	BytesIn  int `json:"bytes_in" yaml:"bytes_in"`
	BytesOut int `json:"bytes_out" yaml:"bytes_out"`

	// Error describes why the conversion failed, if it did.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Regions lists the block comments that were converted.
	Regions []Region `json:"-" yaml:"-"`
}

// Run is one recorded conversion in the history database.
type Run struct {
	ID           int64            `json:"id" yaml:"id"`
	Input        string           `json:"input" yaml:"input"`
	Output       string           `json:"output" yaml:"output"`
	Status       ConversionStatus `json:"status" yaml:"status"`
	Regions      int              `json:"regions" yaml:"regions"`
	LinesEmitted int              `json:"lines_emitted" yaml:"lines_emitted"`
	LinesDropped int              `json:"lines_dropped" yaml:"lines_dropped"`
	BytesIn      int              `json:"bytes_in" yaml:"bytes_in"`
	BytesOut     int              `json:"bytes_out" yaml:"bytes_out"`
	Error        string           `json:"error,omitempty" yaml:"error,omitempty"`
	At           time.Time        `json:"at" yaml:"at"`
}

// RunFromResult builds a history entry from a file conversion outcome.
// A non-nil err marks the run failed and overrides any recorded message.
func RunFromResult(res FileResult, err error) Run {
	run := Run{
		Input:        res.Input,
		Output:       res.Output,
		Status:       res.Status,
		Regions:      res.Stats.Regions,
		LinesEmitted: res.Stats.LinesEmitted,
		LinesDropped: res.Stats.LinesDropped,
		BytesIn:      res.BytesIn,
		BytesOut:     res.BytesOut,
		Error:        res.Error,
		At:           time.Now().UTC(),
	}
	if err != nil {
		run.Status = ConversionFailed
		run.Error = err.Error()
	}
	return run
}
