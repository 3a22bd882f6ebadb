// Package view is the rendering, layout and scroll engine: it turns
// classified datasets plus per-dataset representation choices into a
// line-addressable document and answers scroll queries against it.
package view

import (
	"encoding/json"
	"fmt"
)

// Mode selects how a dataset is displayed.
type Mode int

const (
	ModeTable Mode = iota
	ModeBars
	ModeTree
	ModeSkip
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeBars:
		return "bars"
	case ModeTree:
		return "tree"
	case ModeSkip:
		return "skip"
	}
	return "table"
}

// ParseMode parses a wire name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "table":
		return ModeTable, nil
	case "bars":
		return ModeBars, nil
	case "tree":
		return ModeTree, nil
	case "skip":
		return ModeSkip, nil
	}
	return ModeTable, fmt.Errorf("unknown representation type %q", s)
}

// MarshalJSON encodes the mode as its wire name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a wire name.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MinSlide and MaxSlide bound slide assignments.
const (
	MinSlide = 1
	MaxSlide = 9
)

// Config is the chosen representation for one dataset. Columns applies to
// table mode, Field to bars mode. Slide places the dataset on a page; zero
// means slide 1.
type Config struct {
	Mode    Mode     `json:"type"`
	Columns []string `json:"columns,omitempty"`
	Field   string   `json:"field,omitempty"`
	Slide   int      `json:"slide,omitempty"`
}

// SlideNumber returns the config's slide clamped into [MinSlide, MaxSlide].
func (c Config) SlideNumber() int {
	switch {
	case c.Slide < MinSlide:
		return MinSlide
	case c.Slide > MaxSlide:
		return MaxSlide
	}
	return c.Slide
}
