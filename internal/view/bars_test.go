package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBars_SortedAndScaled(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [
		{"name": "a", "value": 10},
		{"name": "b", "value": 30},
		{"name": "c", "value": 20}
	]}`)

	lines := RenderBars(d, Config{Mode: ModeBars}, 80, unboundedLines)
	require.Len(t, lines, 3)

	// Descending by value.
	assert.True(t, strings.HasPrefix(lines[0], "b "))
	assert.True(t, strings.HasPrefix(lines[1], "c "))
	assert.True(t, strings.HasPrefix(lines[2], "a "))

	// Width 80 leaves a 50-cell bar. 30 is the max: fully filled.
	assert.Equal(t, 50, strings.Count(lines[0], "█"))
	assert.Equal(t, 0, strings.Count(lines[0], "▒"))
	// 20/30 of 50 cells, truncated.
	assert.Equal(t, 33, strings.Count(lines[1], "█"))
	assert.Equal(t, 17, strings.Count(lines[1], "▒"))
	// 10/30 of 50 cells, truncated.
	assert.Equal(t, 16, strings.Count(lines[2], "█"))
	assert.Equal(t, 34, strings.Count(lines[2], "▒"))
}

func TestRenderBars_StableOrderOnTies(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [
		{"name": "first", "value": 5},
		{"name": "second", "value": 5}
	]}`)

	lines := RenderBars(d, Config{Mode: ModeBars}, 80, unboundedLines)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestRenderBars_ValueResolution(t *testing.T) {
	tests := []struct {
		name string
		src  string
		cfg  Config
		want string // right-aligned amount column
	}{
		{
			name: "preferred field wins",
			src:  `{"rows": [{"name": "x", "value": 1, "pop": 9}]}`,
			cfg:  Config{Field: "pop"},
			want: "9",
		},
		{
			name: "preferred field missing falls back",
			src:  `{"rows": [{"name": "x", "count": 4}]}`,
			cfg:  Config{Field: "gone"},
			want: "4",
		},
		{
			name: "fixed fallback order prefers value",
			src:  `{"rows": [{"name": "x", "count": 4, "value": 2}]}`,
			cfg:  Config{},
			want: "2",
		},
		{
			name: "first remaining numeric field",
			src:  `{"rows": [{"name": "x", "score": 7}]}`,
			cfg:  Config{},
			want: "7",
		},
		{
			name: "numeric string coerces",
			src:  `{"rows": [{"name": "x", "value": "12"}]}`,
			cfg:  Config{},
			want: "12",
		},
		{
			name: "text value falls back to its length",
			src:  `{"rows": [{"name": "x", "value": "abcde"}]}`,
			cfg:  Config{},
			want: "5",
		},
		{
			name: "nothing usable yields one",
			src:  `{"rows": [{"name": "x", "flagged": null}]}`,
			cfg:  Config{},
			want: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := datasetFromJSON(t, tt.src)
			lines := RenderBars(d, tt.cfg, 80, unboundedLines)
			require.Len(t, lines, 1)
			assert.True(t, strings.HasSuffix(lines[0], " "+tt.want), "line %q should end with %q", lines[0], tt.want)
		})
	}
}

func TestRenderBars_NarrowWidthKeepsOneCell(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [{"name": "x", "value": 3}]}`)

	lines := RenderBars(d, Config{}, 20, unboundedLines)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, strings.Count(lines[0], "█"))
}

func TestRenderBars_LongLabelCutHard(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [{"name": "a very long label indeed", "value": 1}]}`)

	lines := RenderBars(d, Config{}, 80, unboundedLines)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "a very long lab "))
	assert.NotContains(t, lines[0], "...")
}

func TestRenderBars_MaxLines(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [
		{"name": "a", "value": 3},
		{"name": "b", "value": 2},
		{"name": "c", "value": 1}
	]}`)

	lines := RenderBars(d, Config{}, 80, 2)
	assert.Len(t, lines, 2)
}

func TestRenderBars_AllZeroValues(t *testing.T) {
	d := datasetFromJSON(t, `{"rows": [{"name": "a", "value": 0}, {"name": "b", "value": 0}]}`)

	lines := RenderBars(d, Config{}, 80, unboundedLines)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 0, strings.Count(line, "█"))
	}
}
