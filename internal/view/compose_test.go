package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/value"
)

func classifyJSON(t *testing.T, src string) []*dataset.Dataset {
	t.Helper()
	root, err := value.DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)
	return dataset.Classify(root)
}

const twoSetSrc = `{
	"top_scores": [{"name": "a", "value": 3}],
	"settings": {"theme": "dark"}
}`

func TestCompose_SingleSetHasNoHeader(t *testing.T) {
	sets := classifyJSON(t, `{"rows": [{"name": "a", "value": 3}]}`)
	e := NewEngine(sets, map[string]Config{"rows": {Mode: ModeBars}})

	lines := e.Compose(1, 80)
	require.NotEmpty(t, lines)
	assert.NotContains(t, lines[0], "Rows")
	assert.Contains(t, lines[0], "█")
}

func TestCompose_MultiSetHeadersAndSeparators(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeBars},
		"settings":   {Mode: ModeTree},
	})

	lines := e.Compose(1, 80)
	require.NotEmpty(t, lines)

	// Two-line header per dataset: title then a rule.
	assert.Equal(t, "Top Scores (bars)", lines[0])
	assert.Equal(t, strings.Repeat("─", len("top_scores")+10), lines[1])

	// Blank separator between datasets, none after the last.
	sepIdx := -1
	for i, line := range lines {
		if line == "" {
			sepIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, sepIdx, 0, "expected a blank separator")
	assert.Equal(t, "Settings (tree)", lines[sepIdx+1])
	assert.NotEqual(t, "", lines[len(lines)-1])
}

func TestCompose_HeaderRuleCappedAtWidth(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeBars},
		"settings":   {Mode: ModeTree},
	})

	lines := e.Compose(1, 12)
	require.NotEmpty(t, lines)
	assert.Equal(t, strings.Repeat("─", 12), lines[1])
}

func TestCompose_UnconfiguredSetDropped(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeBars},
	})

	lines := e.Compose(1, 80)
	require.NotEmpty(t, lines)
	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "Settings")
}

func TestCompose_NoConfigsShowsEverythingAsTables(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, nil)

	require.Equal(t, 1, e.TotalSlides())
	lines := e.Compose(1, 80)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Top Scores (table)")
	assert.Contains(t, joined, "Settings (table)")
	assert.Contains(t, joined, "│")
}

func TestCompose_SkippedSetExcluded(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeSkip},
		"settings":   {Mode: ModeTree},
	})

	lines := e.Compose(1, 80)
	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "Top Scores")
	assert.Contains(t, joined, "theme")
}

func TestCompose_Idempotent(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeBars},
		"settings":   {Mode: ModeTree},
	})

	first := e.Compose(1, 80)
	second := e.Compose(1, 80)
	assert.Equal(t, first, second)
	assert.Equal(t, len(first), e.TotalLines(1, 80))
}

func TestCompose_SlideAssignment(t *testing.T) {
	sets := classifyJSON(t, twoSetSrc)
	e := NewEngine(sets, map[string]Config{
		"top_scores": {Mode: ModeBars, Slide: 1},
		"settings":   {Mode: ModeTree, Slide: 2},
	})

	require.Equal(t, 2, e.TotalSlides())

	one := strings.Join(e.Compose(1, 80), "\n")
	two := strings.Join(e.Compose(2, 80), "\n")
	assert.Contains(t, one, "█")
	assert.NotContains(t, one, "theme")
	assert.Contains(t, two, "theme")

	// Single dataset per slide: no headers.
	assert.NotContains(t, one, "Top Scores")
	assert.NotContains(t, two, "Settings")
}

func TestWindow(t *testing.T) {
	doc := make([]string, 25)
	for i := range doc {
		doc[i] = strings.Repeat("x", i+1)
	}

	tests := []struct {
		name      string
		offset    int
		rows      int
		wantLen   int
		wantFirst string
	}{
		{"top of document", 0, 10, 10, "x"},
		{"middle", 5, 10, 10, strings.Repeat("x", 6)},
		{"clamped to end", 20, 10, 5, strings.Repeat("x", 21)},
		{"offset past end clamps to last line", 99, 10, 1, strings.Repeat("x", 25)},
		{"negative offset clamps to zero", -3, 10, 10, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(doc, tt.offset, tt.rows)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0])
		})
	}
}

func TestWindow_Degenerate(t *testing.T) {
	assert.Nil(t, Window(nil, 0, 10))
	assert.Nil(t, Window([]string{"a"}, 0, 0))
}
