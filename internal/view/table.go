package view

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/vizr/internal/dataset"
)

// maxColumnWidth caps a column's natural width so one wide value cannot
// starve the rest of the table.
const maxColumnWidth = 20

// RenderTable lays a dataset out as a box-drawing grid sized to width. Row
// emission stops once maxLines is reached; the borders and header are always
// drawn. A dataset with no displayable columns yields zero lines.
func RenderTable(d *dataset.Dataset, cfg Config, width, maxLines int) []string {
	if len(d.Records) == 0 {
		return nil
	}

	columns := tableColumns(d, cfg)
	if len(columns) == 0 {
		return nil
	}

	widths := columnWidths(d, columns, width)

	lines := make([]string, 0, len(d.Records)+4)
	lines = append(lines, borderRow(columns, widths, "┌", "┬", "┐"))

	var header strings.Builder
	header.WriteString("│")
	for _, col := range columns {
		header.WriteString(" ")
		header.WriteString(padCell(titleWords(col), widths[col]-1))
		header.WriteString("│")
	}
	lines = append(lines, header.String())
	lines = append(lines, borderRow(columns, widths, "├", "┼", "┤"))

	// -1 keeps room for the bottom border.
	available := maxLines - len(lines) - 1
	if available > len(d.Records) {
		available = len(d.Records)
	}
	for i := 0; i < available; i++ {
		rec := d.Records[i]
		var row strings.Builder
		row.WriteString("│")
		for _, col := range columns {
			cell := ""
			if v, ok := rec.Get(col); ok {
				cell = v.String()
			}
			cell = clipCell(cell, widths[col]-2)
			row.WriteString(" ")
			row.WriteString(padCell(cell, widths[col]-1))
			row.WriteString("│")
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, borderRow(columns, widths, "└", "┴", "┘"))
	return lines
}

// tableColumns picks the column set: the explicit config selection when every
// named column still exists in the data, otherwise all non-reserved keys in
// sorted order.
func tableColumns(d *dataset.Dataset, cfg Config) []string {
	present := make(map[string]bool)
	for _, rec := range d.Records {
		for _, key := range rec.Keys() {
			if !strings.HasPrefix(key, dataset.ReservedPrefix) {
				present[key] = true
			}
		}
	}
	if len(present) == 0 {
		return nil
	}

	if len(cfg.Columns) > 0 {
		all := true
		for _, col := range cfg.Columns {
			if !present[col] {
				all = false
				break
			}
		}
		if all {
			return cfg.Columns
		}
	}

	columns := make([]string, 0, len(present))
	for key := range present {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

// columnWidths computes each column's width: the natural minimum (header or
// widest value, plus padding, capped), then any surplus terminal width spread
// evenly with the remainder going to the leftmost columns.
func columnWidths(d *dataset.Dataset, columns []string, width int) map[string]int {
	widths := make(map[string]int, len(columns))
	for _, col := range columns {
		w := runewidth.StringWidth(col)
		for _, rec := range d.Records {
			if v, ok := rec.Get(col); ok {
				if cw := runewidth.StringWidth(v.String()); cw > w {
					w = cw
				}
			}
		}
		w += 2
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		widths[col] = w
	}

	total := len(columns) + 1 // border characters
	for _, w := range widths {
		total += w
	}
	if total < width {
		surplus := width - total
		per := surplus / len(columns)
		rem := surplus % len(columns)
		for i, col := range columns {
			widths[col] += per
			if i < rem {
				widths[col]++
			}
		}
	}
	return widths
}

func borderRow(columns []string, widths map[string]int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, col := range columns {
		b.WriteString(strings.Repeat("─", widths[col]))
		if i == len(columns)-1 {
			b.WriteString(right)
		} else {
			b.WriteString(mid)
		}
	}
	return b.String()
}
