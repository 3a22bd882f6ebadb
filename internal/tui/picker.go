package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/vizr/internal/prefstore"
)

// pickerItem adapts a stored entry to the bubbles list.
type pickerItem struct {
	entry prefstore.Entry
}

func (i pickerItem) Title() string { return i.entry.FileName }

func (i pickerItem) Description() string {
	return fmt.Sprintf("%s · %d bytes · saved %s",
		i.entry.FilePath, i.entry.FileSize, i.entry.CreatedAt.Format("2006-01-02 15:04"))
}

func (i pickerItem) FilterValue() string { return i.entry.FileName }

// pickerModel lists previously configured files that still exist on disk.
type pickerModel struct {
	list   list.Model
	choice string
	width  int
	height int
}

func newPickerModel(entries []prefstore.Entry) pickerModel {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		if !e.FileExists {
			continue
		}
		items = append(items, pickerItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "vizr - Saved files"
	l.SetShowStatusBar(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.entry.FilePath
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if len(m.list.Items()) == 0 {
		return "No saved files found. Run vizr with a data file first.\n\nPress q to quit."
	}
	return m.list.View()
}
