// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert applies the comment conversion to files on disk, one at a
// time or in batches.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/line-comment/internal/comment"
	"github.com/pdiddy/line-comment/internal/textio"
	"github.com/pdiddy/line-comment/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int

	// Files lists per-file outcomes in input order.
	Files []types.FileResult
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile reads in, converts its block comments and writes the result
// to out. Any error leaves out untouched.
func ConvertFile(in, out string) (types.FileResult, error) {
	res := types.FileResult{Input: in, Output: out, Status: types.ConversionFailed}

	src, err := textio.ReadText(in)
	if err != nil {
		return res, err
	}
	res.BytesIn = len(src)

	res.Regions = comment.Find(src)
	converted, stats := comment.Splice(src, res.Regions)
	res.Stats = stats
	res.BytesOut = len(converted)

	if err := textio.WriteText(out, converted); err != nil {
		return res, err
	}
	res.Status = types.ConversionDone
	return res, nil
}

// ConvertBatch converts each path into outDir under its base name, printing
// per-file status to w and returning a summary. Existing outputs are skipped
// unless force is set. A failing file does not stop the batch.
func ConvertBatch(paths []string, outDir string, force bool, w io.Writer) BatchResult {
	var result BatchResult

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		for _, p := range paths {
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			result.Failed++
			result.Files = append(result.Files, types.FileResult{
				Input:  p,
				Output: outputPath(p, outDir),
				Status: types.ConversionFailed,
				Error:  err.Error(),
			})
		}
		printSummary(w, result)
		return result
	}

	for _, p := range paths {
		res, err := convertOne(p, outDir, force)
		if err != nil {
			res.Error = err.Error()
		}
		result.Files = append(result.Files, res)
		switch res.Status {
		case types.ConversionDone:
			fmt.Fprintf(w, "converted: %s (%d regions)\n", p, res.Stats.Regions)
			result.Converted++
		case types.ConversionNone:
			fmt.Fprintf(w, "skipped: %s (already exists)\n", p)
			result.Skipped++
		case types.ConversionFailed:
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			result.Failed++
		}
	}
	printSummary(w, result)
	return result
}

func convertOne(in, outDir string, force bool) (types.FileResult, error) {
	out := outputPath(in, outDir)

	same, err := samePath(in, out)
	if err != nil {
		return types.FileResult{Input: in, Output: out, Status: types.ConversionFailed}, err
	}
	if same {
		return types.FileResult{Input: in, Output: out, Status: types.ConversionFailed},
			fmt.Errorf("output %s would overwrite its input", out)
	}

	if !force {
		if _, err := os.Stat(out); err == nil {
			return types.FileResult{Input: in, Output: out, Status: types.ConversionNone}, nil
		}
	}
	return ConvertFile(in, out)
}

func outputPath(in, outDir string) string {
	return filepath.Join(outDir, filepath.Base(in))
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", b, err)
	}
	return absA == absB, nil
}

func printSummary(w io.Writer, r BatchResult) {
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		r.Converted, r.Skipped, r.Failed, r.Total())
}
