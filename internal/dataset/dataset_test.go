package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/vizr/internal/value"
)

func classifyJSON(t *testing.T, src string) []*Dataset {
	t.Helper()
	root, err := value.DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)
	return Classify(root)
}

func TestClassify_MapRoot(t *testing.T) {
	out := classifyJSON(t, `{
		"scores": {"alice": 10, "bob": 20},
		"users": [{"name": "x", "age": 5}],
		"title": "ignored scalar",
		"empty": {},
		"none": []
	}`)

	require.Len(t, out, 2)
	assert.Equal(t, "scores", out[0].Name)
	assert.Equal(t, KindDict, out[0].Kind)
	assert.Equal(t, "users", out[1].Name)
	assert.Equal(t, KindList, out[1].Kind)
}

func TestClassify_ListRoot(t *testing.T) {
	out := classifyJSON(t, `[{"name": "a"}, {"name": "b"}]`)

	require.Len(t, out, 1)
	assert.Equal(t, "data", out[0].Name)
	assert.Equal(t, KindList, out[0].Kind)
	assert.Equal(t, 2, out[0].Size())
}

func TestClassify_EmptyInput(t *testing.T) {
	assert.Empty(t, classifyJSON(t, `{}`))
	assert.Empty(t, classifyJSON(t, `[]`))
}

func TestClassify_DictRecords(t *testing.T) {
	out := classifyJSON(t, `{"scores": {"alice": 10, "note": "n/a", "ok": true}}`)

	require.Len(t, out, 1)
	d := out[0]

	// One record per entry, shaped as {name, value}.
	require.Equal(t, 3, d.Size())
	name, _ := d.Records[0].Get("name")
	assert.Equal(t, "alice", name.String())
	val, _ := d.Records[0].Get("value")
	assert.Equal(t, "10", val.String())

	assert.Equal(t, []string{"alice", "note", "ok"}, d.SampleKeys)
	// Booleans count as numeric; strings do not.
	assert.Equal(t, []string{"alice", "ok"}, d.NumericFields)
}

func TestClassify_ListSampleKeys(t *testing.T) {
	out := classifyJSON(t, `{"rows": [
		{"name": "a", "count": 1, "_meta": "x"},
		{"name": "b", "extra": "e"}
	]}`)

	require.Len(t, out, 1)
	d := out[0]

	// Union in first-seen order, reserved keys excluded.
	assert.Equal(t, []string{"name", "count", "extra"}, d.SampleKeys)
	// Numeric inference uses the first record only.
	assert.Equal(t, []string{"count"}, d.NumericFields)
}

func TestClassify_ListOfScalarsWrapsRecords(t *testing.T) {
	out := classifyJSON(t, `{"tags": ["go", "tui"]}`)

	require.Len(t, out, 1)
	d := out[0]
	require.Equal(t, 2, d.Size())

	name, _ := d.Records[0].Get("name")
	assert.Equal(t, "go", name.String())
	val, _ := d.Records[0].Get("value")
	assert.Equal(t, "go", val.String())
	assert.Empty(t, d.SampleKeys)
}

func TestClassify_OrderFollowsSource(t *testing.T) {
	out := classifyJSON(t, `{"b": [{"x": 1}], "a": {"k": 2}, "c": [{"y": 3}]}`)

	require.Len(t, out, 3)
	names := []string{out[0].Name, out[1].Name, out[2].Name}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}
