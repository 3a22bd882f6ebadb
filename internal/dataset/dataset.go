// Package dataset classifies a loaded value tree into named datasets ready
// for rendering.
package dataset

import (
	"strings"

	"github.com/leapstack-labs/vizr/internal/value"
)

// ReservedPrefix marks record keys that carry metadata rather than data.
// Reserved keys are excluded from column sets and tree roots.
const ReservedPrefix = "_"

// Kind distinguishes how a dataset was shaped in the source file.
type Kind string

const (
	// KindDict is a dataset built from a map entry: one record per key.
	KindDict Kind = "dict"
	// KindList is a dataset built from a list of records.
	KindList Kind = "list"
)

// Dataset is a named, classified group of records.
type Dataset struct {
	Name    string
	Kind    Kind
	Records []*value.Value // each record is a map value

	// SampleKeys are the candidate column names offered during configuration.
	SampleKeys []string

	// NumericFields is inferred from a single sample (the dict itself, or the
	// first list record). Later records may deviate; the bar renderer's
	// fallback chain recovers them per record.
	NumericFields []string
}

// Size returns the number of records.
func (d *Dataset) Size() int { return len(d.Records) }

// Classify turns a loaded value tree into datasets. Map roots yield one
// candidate dataset per entry; list roots yield a single dataset named
// "data". Scalar-valued or empty entries are dropped. Empty input yields no
// datasets, never an error. Output order follows source order.
func Classify(root *value.Value) []*Dataset {
	var out []*Dataset

	switch root.Kind() {
	case value.KindMap:
		for _, e := range root.Entries() {
			switch {
			case e.Val.IsMap() && e.Val.Len() > 0:
				out = append(out, classifyDict(e.Key, e.Val))
			case e.Val.IsList() && e.Val.Len() > 0:
				out = append(out, classifyList(e.Key, e.Val))
			}
		}
	case value.KindList:
		if root.Len() > 0 {
			out = append(out, classifyList("data", root))
		}
	}

	return out
}

func classifyDict(name string, m *value.Value) *Dataset {
	d := &Dataset{Name: name, Kind: KindDict}
	for _, e := range m.Entries() {
		rec := value.NewMap()
		rec.Set("name", value.NewString(e.Key))
		rec.Set("value", e.Val)
		d.Records = append(d.Records, rec)

		d.SampleKeys = append(d.SampleKeys, e.Key)
		if e.Val.IsNumber() {
			d.NumericFields = append(d.NumericFields, e.Key)
		}
	}
	return d
}

func classifyList(name string, l *value.Value) *Dataset {
	d := &Dataset{Name: name, Kind: KindList}

	seen := make(map[string]bool)
	for _, item := range l.Items() {
		if item.IsMap() {
			d.Records = append(d.Records, item)
			for _, key := range item.Keys() {
				if strings.HasPrefix(key, ReservedPrefix) {
					continue
				}
				if !seen[key] {
					seen[key] = true
					d.SampleKeys = append(d.SampleKeys, key)
				}
			}
		} else {
			rec := value.NewMap()
			rec.Set("name", value.NewString(item.String()))
			rec.Set("value", item)
			d.Records = append(d.Records, rec)
		}
	}

	// Numeric inference samples the first source item only.
	if first := l.Items()[0]; first.IsMap() {
		for _, e := range first.Entries() {
			if e.Val.IsNumber() {
				d.NumericFields = append(d.NumericFields, e.Key)
			}
		}
	}

	return d
}
