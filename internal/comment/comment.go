// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package comment rewrites /* block */ comments as runs of // line comments.
//
// A region runs from a start marker to the nearest following end marker and
// may span lines. Text outside regions is never touched, and a start marker
// with no end marker after it is left as literal text.
package comment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/line-comment/pkg/types"
)

const (
	// LineMarker prefixes every emitted line comment.
	LineMarker = "//"
	// continuationMarker decorates interior lines of a block comment.
	continuationMarker = "*"
	terminator         = "\n"
)

// blockPattern matches a start marker, the shortest body, and an end marker.
// (?s) lets the body span newlines.
var blockPattern = regexp.MustCompile(`(?s)/\*(.*?)\*/`)

// Convert returns src with every block comment replaced by line comments.
func Convert(src string) string {
	out, _ := Apply(src)
	return out
}

// Apply converts src and reports what it changed.
func Apply(src string) (string, types.Stats) {
	return Splice(src, Find(src))
}

// Splice replaces each region of src with its replacement. regions must come
// from Find on the same src.
func Splice(src string, regions []types.Region) (string, types.Stats) {
	var stats types.Stats
	if len(regions) == 0 {
		return src, stats
	}

	var b strings.Builder
	b.Grow(len(src))
	prev := 0
	for _, r := range regions {
		b.WriteString(src[prev:r.Start])
		b.WriteString(r.Replacement)
		prev = r.End
		stats.Add(r)
	}
	b.WriteString(src[prev:])
	return b.String(), stats
}

// Find locates every block comment in src, left to right, and computes its
// replacement. Regions never overlap.
func Find(src string) []types.Region {
	matches := blockPattern.FindAllStringSubmatchIndex(src, -1)
	if matches == nil {
		return nil
	}

	regions := make([]types.Region, 0, len(matches))
	line, scanned := 1, 0
	for _, m := range matches {
		line += strings.Count(src[scanned:m[0]], terminator)
		scanned = m[0]

		body := src[m[2]:m[3]]
		replacement, emitted, dropped := convertBody(body)
		regions = append(regions, types.Region{
			Start:       m[0],
			End:         m[1],
			Line:        line,
			Body:        body,
			Multiline:   strings.Contains(body, terminator),
			Emitted:     emitted,
			Dropped:     dropped,
			Replacement: replacement,
		})
	}
	return regions
}

// ConvertRegion converts the body of one block comment into line comments.
func ConvertRegion(body string) string {
	out, _, _ := convertBody(body)
	return out
}

func convertBody(body string) (out string, emitted, dropped int) {
	if !strings.Contains(body, terminator) {
		return LineMarker + body + terminator, 1, 0
	}

	var b strings.Builder
	for i, l := range strings.Split(body, terminator) {
		if i > 0 {
			l = StripContinuation(l)
			if l == "" {
				dropped++
				continue
			}
		}
		b.WriteString(LineMarker)
		b.WriteString(l)
		b.WriteString(terminator)
		emitted++
	}
	return b.String(), emitted, dropped
}

// StripContinuation removes leading whitespace followed by a single '*'
// from line. Lines without that prefix are returned unchanged. Only one
// marker is removed, so "**" becomes "*".
func StripContinuation(line string) string {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(rest, continuationMarker) {
		return line
	}
	return rest[len(continuationMarker):]
}
