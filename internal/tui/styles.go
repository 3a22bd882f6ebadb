package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles groups the chrome styling; colors degrade with the detected
// terminal profile.
type styles struct {
	Title    lipgloss.Style
	Rule     lipgloss.Style
	Status   lipgloss.Style
	Hotkeys  lipgloss.Style
	ErrText  lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
}

func newStyles() styles {
	plain := termenv.ColorProfile() == termenv.Ascii

	s := styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Rule:     lipgloss.NewStyle(),
		Status:   lipgloss.NewStyle(),
		Hotkeys:  lipgloss.NewStyle(),
		ErrText:  lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle(),
	}
	if !plain {
		s.Rule = s.Rule.Foreground(lipgloss.Color("240"))
		s.Status = s.Status.Foreground(lipgloss.Color("245"))
		s.Hotkeys = s.Hotkeys.Foreground(lipgloss.Color("240"))
		s.ErrText = s.ErrText.Foreground(lipgloss.Color("203"))
		s.Selected = s.Selected.Foreground(lipgloss.Color("81"))
		s.Dim = s.Dim.Foreground(lipgloss.Color("243"))
	}
	return s
}
