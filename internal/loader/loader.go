// Package loader reads JSON and CSV data files into a value tree.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/vizr/internal/value"
)

// Load reads a data file into a value tree, dispatching on the extension.
// CSV files are shaped as {"data": [row...]} so they classify the same way a
// JSON root list does. This is the only layer that surfaces user-visible
// errors; downstream rendering degrades instead of failing.
func Load(path string) (*value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v, err := value.DecodeJSON(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	case ".csv":
		v, err := loadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported file format %q (want .json or .csv)", filepath.Ext(path))
	}
}

func loadCSV(f *os.File) (*value.Value, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	list := value.NewList()
	if len(rows) > 0 {
		header := rows[0]
		for _, row := range rows[1:] {
			rec := value.NewMap()
			for i, col := range header {
				cell := ""
				if i < len(row) {
					cell = row[i]
				}
				rec.Set(col, value.NewString(cell))
			}
			list.Append(rec)
		}
	}

	root := value.NewMap()
	root.Set("data", list)
	return root, nil
}
