package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) *Value {
	t.Helper()
	v, err := DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)
	return v
}

func TestDecodeJSON_PreservesKeyOrder(t *testing.T) {
	v := decode(t, `{"zebra": 1, "apple": 2, "mango": {"y": true, "a": null}}`)

	assert.Equal(t, []string{"zebra", "apple", "mango"}, v.Keys())

	nested, ok := v.Get("mango")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "a"}, nested.Keys())
}

func TestDecodeJSON_Shapes(t *testing.T) {
	v := decode(t, `{"s": "hi", "n": 1.5, "b": false, "x": null, "l": [1, "two"]}`)

	s, _ := v.Get("s")
	assert.Equal(t, KindString, s.Kind())

	n, _ := v.Get("n")
	assert.Equal(t, KindNumber, n.Kind())

	b, _ := v.Get("b")
	assert.Equal(t, KindBool, b.Kind())

	x, _ := v.Get("x")
	assert.Equal(t, KindNull, x.Kind())

	l, _ := v.Get("l")
	require.Equal(t, KindList, l.Kind())
	assert.Equal(t, 2, l.Len())
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"trailing garbage", `{"a": 1} extra`},
		{"unterminated object", `{"a": `},
		{"bare word", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestValue_Float(t *testing.T) {
	tests := []struct {
		name   string
		val    *Value
		want   float64
		wantOK bool
	}{
		{"number", NewNumber(3.25), 3.25, true},
		{"bool true", NewBool(true), 1, true},
		{"bool false", NewBool(false), 0, true},
		{"numeric string", NewString("42"), 42, true},
		{"padded numeric string", NewString(" 7.5 "), 7.5, true},
		{"word string", NewString("seven"), 0, false},
		{"null", Null, 0, false},
		{"map", NewMap(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.val.Float()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	list := NewList()
	list.Append(NewString("a"))
	list.Append(NewNumber(2))

	m := NewMap()
	m.Set("k", NewString("v"))
	m.Set("n", NewNumber(1))

	tests := []struct {
		name string
		val  *Value
		want string
	}{
		{"integral number drops decimals", NewNumber(120), "120"},
		{"fractional number keeps digits", NewNumber(1.5), "1.5"},
		{"string is bare", NewString("plain"), "plain"},
		{"bool", NewBool(true), "true"},
		{"null", Null, "null"},
		{"list quotes strings", list, `["a", 2]`},
		{"map is compact", m, `{k: "v", n: 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.val.String())
		})
	}
}

func TestValue_SetReplacesInPlace(t *testing.T) {
	m := NewMap()
	m.Set("a", NewNumber(1))
	m.Set("b", NewNumber(2))
	m.Set("a", NewNumber(9))

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	a, _ := m.Get("a")
	f, _ := a.Float()
	assert.Equal(t, 9.0, f)
}

func TestValue_NilSafety(t *testing.T) {
	var v *Value
	assert.Equal(t, KindNull, v.Kind())
	assert.Nil(t, v.Keys())
	assert.Nil(t, v.Items())
	assert.Equal(t, 0, v.Len())
	_, ok := v.Get("k")
	assert.False(t, ok)
}
