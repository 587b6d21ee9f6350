// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package comment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/line-comment/pkg/types"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no markers is identity",
			src:  "int main() {\n  return 0; // done\n}\n",
			want: "int main() {\n  return 0; // done\n}\n",
		},
		{
			name: "empty input",
			src:  "",
			want: "",
		},
		{
			name: "single-line region keeps surrounding text",
			src:  "a /*hello*/ b",
			want: "a //hello\n b",
		},
		{
			name: "multi-line region strips continuation markers",
			src:  "/* first\n * second\n * third\n **/",
			want: "// first\n// second\n// third\n",
		},
		{
			name: "unterminated start marker is left literal",
			src:  "x /* never closed\n * y\n",
			want: "x /* never closed\n * y\n",
		},
		{
			name: "regions match non-greedily",
			src:  "/*a*/ x /*b*/",
			want: "//a\n x //b\n",
		},
		{
			name: "empty body",
			src:  "/**/",
			want: "//\n",
		},
		{
			name: "slash star slash is not a region",
			src:  "/*/",
			want: "/*/",
		},
		{
			name: "first line is never stripped",
			src:  "/*  * keep\n * x */",
			want: "//  * keep\n// x \n",
		},
		{
			name: "only one continuation marker is stripped",
			src:  "/*a\n **\n*/",
			want: "//a\n//*\n",
		},
		{
			name: "interior blank lines are dropped",
			src:  "/*\n * a\n *\n\n * b\n */",
			want: "//\n// a\n// b\n// \n",
		},
		{
			name: "lines without a marker are kept as is",
			src:  "/*\n   plain\n*/",
			want: "//\n//   plain\n",
		},
		{
			name: "trailing unterminated marker after a region",
			src:  "/* a */ /* b",
			want: "// a \n /* b",
		},
		{
			name: "non-ascii text passes through",
			src:  "/* héllo\n * wörld */ ü",
			want: "// héllo\n// wörld \n ü",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.src))
		})
	}
}

func TestConvert_SecondPassUnchanged(t *testing.T) {
	src := "/**\n * Doc.\n *\n * More.\n */\nint x; /* inline */\n"
	once := Convert(src)
	require.NotEqual(t, src, once)
	assert.Equal(t, once, Convert(once))
	assert.NotContains(t, once, "*/")
}

func TestConvert_MultiLineEmitsThreeLines(t *testing.T) {
	body := strings.Join([]string{" first", " * second", " * third", " *"}, "\n")
	got := ConvertRegion(body)

	lines := strings.SplitAfter(got, "\n")
	// SplitAfter leaves a trailing empty element after the final terminator.
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"// first\n", "// second\n", "// third\n", ""}, lines)
}

func TestConvertRegion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: "//\n"},
		{name: "single line", body: " x ", want: "// x \n"},
		{name: "lone newline", body: "\n", want: "//\n"},
		{name: "trailing newline", body: "x\n", want: "//x\n"},
		{name: "all continuation lines empty", body: "x\n *\n\t*\n", want: "//x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertRegion(tt.body))
		})
	}
}

func TestStripContinuation(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "  * x", want: " x"},
		{line: " *", want: ""},
		{line: "\t*", want: ""},
		{line: "*", want: ""},
		{line: "**", want: "*"},
		{line: "  x", want: "  x"},
		{line: "x * y", want: "x * y"},
		{line: "", want: ""},
		{line: "   ", want: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, StripContinuation(tt.line))
		})
	}
}

func TestFind(t *testing.T) {
	src := "x\n/*a*/\ny /*b\n*/"
	regions := Find(src)
	require.Len(t, regions, 2)

	assert.Equal(t, types.Region{
		Start:       2,
		End:         7,
		Line:        2,
		Body:        "a",
		Multiline:   false,
		Emitted:     1,
		Dropped:     0,
		Replacement: "//a\n",
	}, regions[0])

	assert.Equal(t, types.Region{
		Start:       10,
		End:         16,
		Line:        3,
		Body:        "b\n",
		Multiline:   true,
		Emitted:     1,
		Dropped:     1,
		Replacement: "//b\n",
	}, regions[1])
}

func TestFind_NoRegions(t *testing.T) {
	assert.Nil(t, Find("plain text /* open"))
}

func TestApply(t *testing.T) {
	out, stats := Apply("x\n/*a*/\ny /*b\n*/")
	assert.Equal(t, "x\n//a\n\ny //b\n", out)
	assert.Equal(t, types.Stats{
		Regions:      2,
		SingleLine:   1,
		MultiLine:    1,
		LinesEmitted: 2,
		LinesDropped: 1,
	}, stats)
}

func TestApply_NoRegionsReturnsSource(t *testing.T) {
	src := "nothing here\n"
	out, stats := Apply(src)
	assert.Equal(t, src, out)
	assert.Zero(t, stats)
}

func TestSplice_MatchesApply(t *testing.T) {
	src := "/* a\n * b */ x /* c */"
	regions := Find(src)
	spliced, stats := Splice(src, regions)
	applied, applyStats := Apply(src)
	assert.Equal(t, applied, spliced)
	assert.Equal(t, applyStats, stats)
	assert.Equal(t, "// a\n// b \n x // c \n", spliced)
}

func TestConvert_Golden(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("..", "..", "testdata", "sample.c"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "..", "testdata", "sample.golden.c"))
	require.NoError(t, err)

	assert.Equal(t, string(want), Convert(string(src)))
}
