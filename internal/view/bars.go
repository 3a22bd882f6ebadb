package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/value"
)

// barFallbackFields is the fixed priority list tried when no preferred field
// resolves on a record.
var barFallbackFields = []string{"value", "population", "count", "amount", "size", "total"}

const (
	barLabelWidth = 15
	barValueWidth = 10
	barMaxWidth   = 50
	barReserved   = 30 // label, value column and spacing
)

type barEntry struct {
	name  string
	value float64
}

// RenderBars renders a dataset as proportional horizontal bars, sorted
// descending by resolved value. Emission stops at maxLines.
func RenderBars(d *dataset.Dataset, cfg Config, width, maxLines int) []string {
	if len(d.Records) == 0 {
		return nil
	}

	entries := make([]barEntry, 0, len(d.Records))
	for _, rec := range d.Records {
		name := ""
		if v, ok := rec.Get("name"); ok {
			name = v.String()
		}
		entries = append(entries, barEntry{name: name, value: resolveBarValue(rec, cfg.Field)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})

	maxValue := entries[0].value
	barWidth := width - barReserved
	if barWidth > barMaxWidth {
		barWidth = barMaxWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}

	count := len(entries)
	if maxLines < count {
		count = maxLines
	}
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		e := entries[i]
		filled := 0
		if maxValue > 0 {
			filled = int(e.value / maxValue * float64(barWidth))
		}
		if filled > barWidth {
			filled = barWidth
		}
		empty := barWidth - filled

		// Long names are cut hard, no ellipsis.
		label := padCell(runewidth.Truncate(e.name, barLabelWidth, ""), barLabelWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("▒", empty)
		amount := fmt.Sprintf("%*s", barValueWidth, strconv.FormatFloat(e.value, 'f', -1, 64))
		lines = append(lines, label+" "+bar+" "+amount)
	}
	return lines
}

// resolveBarValue finds a numeric value for one record, in strict precedence:
// the preferred field, then the fixed fallback list, then the first remaining
// non-reserved non-name field that parses, and finally the length of the
// record's value/name text (or 1).
func resolveBarValue(rec *value.Value, preferred string) float64 {
	if preferred != "" {
		if v, ok := rec.Get(preferred); ok {
			if f, ok := v.Float(); ok {
				return f
			}
		}
	}

	for _, field := range barFallbackFields {
		if v, ok := rec.Get(field); ok {
			if f, ok := v.Float(); ok {
				return f
			}
		}
	}

	for _, e := range rec.Entries() {
		if strings.HasPrefix(e.Key, dataset.ReservedPrefix) || strings.EqualFold(e.Key, "name") {
			continue
		}
		if f, ok := e.Val.Float(); ok {
			return f
		}
	}

	fallback, ok := rec.Get("value")
	if !ok {
		fallback, _ = rec.Get("name")
	}
	if text, ok := fallback.Text(); ok {
		return float64(utf8.RuneCountInString(text))
	}
	return 1
}
