package view

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/vizr/internal/dataset"
)

// unboundedLines is passed to renderers when the whole dataset must be
// produced, e.g. for total-length queries.
const unboundedLines = 1 << 20

// Renderable pairs a dataset with its effective representation config.
type Renderable struct {
	Dataset *dataset.Dataset
	Config  Config
}

// Engine composes the per-slide view document from classified datasets and
// their representation configs. It holds no scroll state and caches nothing:
// every query re-renders from scratch so the output always matches the
// current configs and terminal width.
type Engine struct {
	datasets []*dataset.Dataset
	configs  map[string]Config
	slides   Slides
}

// NewEngine organizes the datasets into slides and returns an engine over
// them.
func NewEngine(datasets []*dataset.Dataset, configs map[string]Config) *Engine {
	names := make([]string, len(datasets))
	for i, d := range datasets {
		names[i] = d.Name
	}
	return &Engine{
		datasets: datasets,
		configs:  configs,
		slides:   Organize(names, configs),
	}
}

// Slides exposes the slide grouping.
func (e *Engine) Slides() Slides { return e.slides }

// TotalSlides returns the number of slides, at least 1.
func (e *Engine) TotalSlides() int { return e.slides.Total }

// SlideSets returns the datasets on a slide, in classifier order, with their
// effective configs. A dataset on the slide without a config renders as a
// plain table rather than vanishing.
func (e *Engine) SlideSets(slide int) []Renderable {
	names := e.slides.Names(slide)
	onSlide := make(map[string]bool, len(names))
	for _, n := range names {
		onSlide[n] = true
	}

	var sets []Renderable
	for _, d := range e.datasets {
		if !onSlide[d.Name] {
			continue
		}
		cfg, ok := e.configs[d.Name]
		if !ok {
			cfg = Config{Mode: ModeTable, Slide: slide}
		}
		if cfg.Mode == ModeSkip {
			continue
		}
		sets = append(sets, Renderable{Dataset: d, Config: cfg})
	}
	return sets
}

// Compose produces the full, un-scrolled line sequence for a slide at the
// given terminal width. When the slide holds more than one dataset, each
// rendering is preceded by a two-line header and followed by a blank
// separator (except after the last).
func (e *Engine) Compose(slide, width int) []string {
	return composeSets(e.SlideSets(slide), width)
}

// TotalLines is the length of the full composed document. Recomputed on
// demand, never cached.
func (e *Engine) TotalLines(slide, width int) int {
	return len(e.Compose(slide, width))
}

func composeSets(sets []Renderable, width int) []string {
	var lines []string
	multi := len(sets) > 1

	for i, set := range sets {
		if multi {
			title := fmt.Sprintf("%s (%s)", displayTitle(set.Dataset.Name), set.Config.Mode)
			rule := len(set.Dataset.Name) + 10
			if rule > width {
				rule = width
			}
			lines = append(lines, title, strings.Repeat("─", rule))
		}

		switch set.Config.Mode {
		case ModeTable:
			lines = append(lines, RenderTable(set.Dataset, set.Config, width, unboundedLines)...)
		case ModeBars:
			lines = append(lines, RenderBars(set.Dataset, set.Config, width, unboundedLines)...)
		case ModeTree:
			lines = append(lines, RenderTree(set.Dataset, unboundedLines)...)
		case ModeSkip:
			// filtered out upstream
		}

		if multi && i < len(sets)-1 {
			lines = append(lines, "")
		}
	}
	return lines
}

// Window returns the visible slice [offset, offset+rows) of a composed
// document, clamped so it never starts past the last line and never has
// negative length.
func Window(lines []string, offset, rows int) []string {
	if len(lines) == 0 || rows <= 0 {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	end := offset + rows
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end]
}
