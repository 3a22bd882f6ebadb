package tui

import "github.com/charmbracelet/bubbles/key"

// viewerKeyMap holds the viewer's normalized key events.
type viewerKeyMap struct {
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	PrevSlide   key.Binding
	NextSlide   key.Binding
	Refresh     key.Binding
	Reconfigure key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultViewerKeys() viewerKeyMap {
	return viewerKeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		PrevSlide: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous slide"),
		),
		NextSlide: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next slide"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+l"),
			key.WithHelp("r", "refresh"),
		),
		Reconfigure: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "configure"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
