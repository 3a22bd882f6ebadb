// Package value provides the recursive value tree that loaded data files are
// decoded into. Maps preserve source key order, which the dataset classifier
// and renderers depend on.
package value

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindMap
	KindList
	KindString
	KindNumber
	KindBool
)

// Entry is one key/value pair of an ordered map.
type Entry struct {
	Key string
	Val *Value
}

// Value is a dynamically-typed node: an ordered map, a list, or a scalar.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	entries []Entry
	index   map[string]int
	items   []*Value
}

// Null is the shared null value.
var Null = &Value{kind: KindNull}

// NewMap creates an empty ordered map.
func NewMap() *Value {
	return &Value{kind: KindMap, index: make(map[string]int)}
}

// NewList creates an empty list.
func NewList() *Value {
	return &Value{kind: KindList}
}

// NewString creates a string scalar.
func NewString(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// NewNumber creates a numeric scalar.
func NewNumber(f float64) *Value {
	return &Value{kind: KindNumber, num: f}
}

// NewBool creates a boolean scalar.
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// Kind returns the value's kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsMap reports whether the value is a map.
func (v *Value) IsMap() bool { return v.Kind() == KindMap }

// IsList reports whether the value is a list.
func (v *Value) IsList() bool { return v.Kind() == KindList }

// IsScalar reports whether the value is a scalar (string, number, bool or null).
func (v *Value) IsScalar() bool {
	k := v.Kind()
	return k != KindMap && k != KindList
}

// IsNumber reports whether the value is numeric. Booleans count, matching the
// classifier's treatment of true/false as 1/0.
func (v *Value) IsNumber() bool {
	k := v.Kind()
	return k == KindNumber || k == KindBool
}

// Set appends a key/value pair, replacing the value in place if the key is
// already present.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindMap {
		return
	}
	if i, ok := v.index[key]; ok {
		v.entries[i].Val = val
		return
	}
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, Entry{Key: key, Val: val})
}

// Get looks up a key in a map value.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindMap {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.entries[i].Val, true
}

// Has reports whether a map value contains the key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the map keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the map entries in insertion order.
func (v *Value) Entries() []Entry {
	if v == nil || v.kind != KindMap {
		return nil
	}
	return v.entries
}

// Append adds an element to a list value.
func (v *Value) Append(item *Value) {
	if v.kind != KindList {
		return
	}
	v.items = append(v.items, item)
}

// Items returns the list elements.
func (v *Value) Items() []*Value {
	if v == nil || v.kind != KindList {
		return nil
	}
	return v.items
}

// Len returns the number of entries or elements; scalars have length 0.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindMap:
		return len(v.entries)
	case KindList:
		return len(v.items)
	default:
		return 0
	}
}

// Float returns the value as a float64. Strings holding a parseable number
// convert too, mirroring the lenient numeric coercion of the bar renderer.
func (v *Value) Float() (float64, bool) {
	switch v.Kind() {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.boolean {
			return 1, true
		}
		return 0, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text returns the underlying string and whether the value is a string scalar.
func (v *Value) Text() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.str, true
}

// String renders the value for display: scalars as bare text, numbers with
// minimal digits, containers in a compact JSON-like form.
func (v *Value) String() string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindList:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(item.quoted())
		}
		b.WriteByte(']')
		return b.String()
	case KindMap:
		var b strings.Builder
		b.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Key)
			b.WriteString(": ")
			b.WriteString(e.Val.quoted())
		}
		b.WriteByte('}')
		return b.String()
	}
	return ""
}

func (v *Value) quoted() string {
	if v.Kind() == KindString {
		return strconv.Quote(v.str)
	}
	return v.String()
}

// DecodeJSON decodes a JSON document into a value tree, preserving object key
// order. The standard decoder's map form would randomize it.
func DecodeJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Reject trailing garbage after the document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return m, nil
		case '[':
			l := NewList()
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				l.Append(item)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return l, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return NewString(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return NewNumber(f), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return Null, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
