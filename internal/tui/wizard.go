package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/view"
)

// wizardStage identifies the question currently on screen.
type wizardStage int

const (
	stageMode wizardStage = iota
	stageColumns
	stageField
	stageSlide
	stageSummary
)

// wizardModel walks the user through one representation choice per data set,
// in classification order, then shows a summary before committing.
type wizardModel struct {
	path     string
	datasets []*dataset.Dataset
	configs  map[string]view.Config

	idx   int
	stage wizardStage

	// column multi-select state
	columns  []string
	selected map[int]bool
	cursor   int

	// bar field single-select state
	fields []string

	styles styles
	width  int

	errMsg  string
	done    bool
	aborted bool
}

func newWizardModel(path string, datasets []*dataset.Dataset, width int) wizardModel {
	return wizardModel{
		path:     path,
		datasets: datasets,
		configs:  make(map[string]view.Config, len(datasets)),
		styles:   newStyles(),
		width:    width,
	}
}

func (m wizardModel) Init() tea.Cmd { return nil }

func (m wizardModel) current() *dataset.Dataset {
	return m.datasets[m.idx]
}

// Result returns the chosen configurations with skipped data sets removed.
func (m wizardModel) Result() map[string]view.Config {
	out := make(map[string]view.Config)
	for name, cfg := range m.configs {
		if cfg.Mode == view.ModeSkip {
			continue
		}
		out[name] = cfg
	}
	return out
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m wizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "esc" {
		m.aborted = true
		return m, tea.Quit
	}

	switch m.stage {
	case stageMode:
		return m.updateMode(msg)
	case stageColumns:
		return m.updateColumns(msg)
	case stageField:
		return m.updateField(msg)
	case stageSlide:
		return m.updateSlide(msg)
	case stageSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m wizardModel) updateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	d := m.current()
	switch msg.String() {
	case "t":
		cfg := view.Config{Mode: view.ModeTable}
		if d.Kind == dataset.KindList && len(d.SampleKeys) > 2 {
			m.configs[d.Name] = cfg
			m.enterColumns(d)
			return m, nil
		}
		m.configs[d.Name] = cfg
		m.stage = stageSlide
	case "b":
		cfg := view.Config{Mode: view.ModeBars}
		if len(d.NumericFields) > 1 {
			m.configs[d.Name] = cfg
			m.enterField(d)
			return m, nil
		}
		m.configs[d.Name] = cfg
		m.stage = stageSlide
	case "r":
		m.configs[d.Name] = view.Config{Mode: view.ModeTree}
		m.stage = stageSlide
	case "s":
		m.configs[d.Name] = view.Config{Mode: view.ModeSkip}
		m.advance()
	case "left":
		m.back()
	case "q":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *wizardModel) enterColumns(d *dataset.Dataset) {
	m.stage = stageColumns
	m.columns = append([]string(nil), d.SampleKeys...)
	m.selected = make(map[int]bool, len(m.columns))
	for i := range m.columns {
		m.selected[i] = true
	}
	m.cursor = 0
}

func (m *wizardModel) enterField(d *dataset.Dataset) {
	m.stage = stageField
	m.fields = append([]string(nil), d.NumericFields...)
	m.cursor = 0
}

func (m wizardModel) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.columns)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
		m.errMsg = ""
	case "a":
		for i := range m.columns {
			m.selected[i] = true
		}
		m.errMsg = ""
	case "n":
		for i := range m.columns {
			m.selected[i] = false
		}
	case "enter":
		var chosen []string
		for i, col := range m.columns {
			if m.selected[i] {
				chosen = append(chosen, col)
			}
		}
		if len(chosen) < 2 {
			m.errMsg = "Select at least 2 columns"
			return m, nil
		}
		d := m.current()
		cfg := m.configs[d.Name]
		// All columns selected means no restriction.
		if len(chosen) < len(m.columns) {
			cfg.Columns = chosen
		}
		m.configs[d.Name] = cfg
		m.stage = stageSlide
		m.errMsg = ""
	}
	return m, nil
}

func (m wizardModel) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter":
		d := m.current()
		cfg := m.configs[d.Name]
		cfg.Field = m.fields[m.cursor]
		m.configs[d.Name] = cfg
		m.stage = stageSlide
	case "s":
		// Keep the automatic field choice.
		m.stage = stageSlide
	}
	return m, nil
}

func (m wizardModel) updateSlide(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		d := m.current()
		cfg := m.configs[d.Name]
		cfg.Slide = int(s[0] - '0')
		m.configs[d.Name] = cfg
		m.advance()
		return m, nil
	}
	if s == "enter" {
		d := m.current()
		cfg := m.configs[d.Name]
		cfg.Slide = view.MinSlide
		m.configs[d.Name] = cfg
		m.advance()
	}
	return m, nil
}

func (m wizardModel) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.done = true
		return m, tea.Quit
	case "left":
		m.idx = len(m.datasets) - 1
		m.stage = stageMode
	case "q":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *wizardModel) advance() {
	m.idx++
	if m.idx >= len(m.datasets) {
		m.stage = stageSummary
		return
	}
	m.stage = stageMode
}

func (m *wizardModel) back() {
	if m.idx == 0 {
		return
	}
	m.idx--
	delete(m.configs, m.current().Name)
	m.stage = stageMode
}

func (m wizardModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Configure %s", m.path)) + "\n\n")

	switch m.stage {
	case stageMode:
		d := m.current()
		b.WriteString(fmt.Sprintf("Data set %d/%d: %s (%d records)\n\n",
			m.idx+1, len(m.datasets), d.Name, d.Size()))
		b.WriteString("How should it be displayed?\n\n")
		b.WriteString("  [t] Table\n")
		b.WriteString("  [b] Bar chart\n")
		b.WriteString("  [r] Tree\n")
		b.WriteString("  [s] Skip\n\n")
		b.WriteString(m.styles.Hotkeys.Render("[←]Back [esc]Cancel"))

	case stageColumns:
		d := m.current()
		b.WriteString(fmt.Sprintf("Columns for %s:\n\n", d.Name))
		for i, col := range m.columns {
			mark := "[ ]"
			if m.selected[i] {
				mark = "[x]"
			}
			line := fmt.Sprintf("  %s %s", mark, col)
			if i == m.cursor {
				line = m.styles.Selected.Render("> " + line[2:])
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString(m.styles.ErrText.Render(m.errMsg) + "\n")
		}
		b.WriteString(m.styles.Hotkeys.Render("[space]Toggle [a]All [n]None [enter]Confirm"))

	case stageField:
		d := m.current()
		b.WriteString(fmt.Sprintf("Value field for %s bars:\n\n", d.Name))
		for i, f := range m.fields {
			line := "    " + f
			if i == m.cursor {
				line = m.styles.Selected.Render("  > " + f)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Hotkeys.Render("[enter]Select [s]Automatic"))

	case stageSlide:
		d := m.current()
		b.WriteString(fmt.Sprintf("Slide for %s (1-9):\n\n", d.Name))
		b.WriteString(m.styles.Hotkeys.Render("[1-9]Assign [enter]Slide 1"))

	case stageSummary:
		b.WriteString("Summary:\n\n")
		names := make([]string, 0, len(m.configs))
		for name := range m.configs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cfg := m.configs[name]
			if cfg.Mode == view.ModeSkip {
				b.WriteString(fmt.Sprintf("  %s: skipped\n", name))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %s, slide %d\n", name, cfg.Mode, cfg.SlideNumber()))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Hotkeys.Render("[enter]Accept [←]Back [esc]Cancel"))
	}

	b.WriteString("\n")
	return b.String()
}
