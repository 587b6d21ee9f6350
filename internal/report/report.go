// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report describes the block comments found in a source text as a
// YAML document.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/line-comment/internal/textio"
	"github.com/pdiddy/line-comment/pkg/types"
)

// Report is the on-disk representation of a conversion: where each block
// comment was found and what it became.
type Report struct {
	Source      string        `yaml:"source"`
	GeneratedAt time.Time     `yaml:"generated_at"`
	Summary     types.Stats   `yaml:"summary"`
	Regions     []RegionEntry `yaml:"regions"`
}

// RegionEntry is one block comment in the report.
type RegionEntry struct {
	Line        int    `yaml:"line"`
	Offset      int    `yaml:"offset"`
	Multiline   bool   `yaml:"multiline"`
	Body        string `yaml:"body"`
	Replacement string `yaml:"replacement"`
}

// Build assembles a report for the regions found in source.
func Build(source string, regions []types.Region, stats types.Stats) Report {
	r := Report{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Summary:     stats,
		Regions:     make([]RegionEntry, 0, len(regions)),
	}
	for _, reg := range regions {
		r.Regions = append(r.Regions, RegionEntry{
			Line:        reg.Line,
			Offset:      reg.Start,
			Multiline:   reg.Multiline,
			Body:        reg.Body,
			Replacement: reg.Replacement,
		})
	}
	return r
}

// Write encodes r as YAML to w.
func Write(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// WriteFile saves r to path as YAML. The file is replaced atomically.
func WriteFile(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return textio.WriteText(path, string(data))
}

// ReadFile loads a previously saved report.
func ReadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
