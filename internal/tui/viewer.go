// Package tui contains the interactive terminal surfaces: the viewer, the
// configuration wizard and the saved-file picker. All layout and scroll
// arithmetic lives in internal/view; this package only owns input, resize
// and redraw.
package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/loader"
	"github.com/leapstack-labs/vizr/internal/view"
)

// fileChangedMsg reports that the data file was modified on disk.
type fileChangedMsg struct{}

type viewerModel struct {
	path     string
	prefs    map[string]view.Config
	datasets []*dataset.Dataset
	engine   *view.Engine
	state    *view.ViewerState

	keys   viewerKeyMap
	styles styles

	width  int
	height int

	showHelp    bool
	reconfigure bool
	loadErr     error

	watcher   *fsnotify.Watcher
	watchPath string
	logger    *slog.Logger
}

func newViewerModel(path string, datasets []*dataset.Dataset, prefs map[string]view.Config, width, height int, watcher *fsnotify.Watcher, watchPath string, logger *slog.Logger) viewerModel {
	engine := view.NewEngine(datasets, prefs)
	return viewerModel{
		path:      path,
		prefs:     prefs,
		datasets:  datasets,
		engine:    engine,
		state:     view.NewViewerState(engine.TotalSlides()),
		keys:      defaultViewerKeys(),
		styles:    newStyles(),
		width:     width,
		height:    height,
		watcher:   watcher,
		watchPath: watchPath,
		logger:    logger,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return waitForChange(m.watcher, m.watchPath)
}

// waitForChange blocks on the watcher until the data file is written, then
// reports it as a message. The command re-arms itself after every event.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) == path && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					return fileChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Resize re-clamps the offset; it never resets it.
		m.state.Clamp(m.totalLines(), m.rows())
		return m, nil

	case fileChangedMsg:
		m = m.reload()
		return m, waitForChange(m.watcher, m.watchPath)

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m viewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ScrollDown):
		m.state.ScrollDown(m.totalLines(), m.rows())
	case key.Matches(msg, m.keys.ScrollUp):
		m.state.ScrollUp()
	case key.Matches(msg, m.keys.Top):
		m.state.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.state.Bottom(m.totalLines(), m.rows())
	case key.Matches(msg, m.keys.PrevSlide):
		m.state.PrevSlide()
	case key.Matches(msg, m.keys.NextSlide):
		m.state.NextSlide()
	case key.Matches(msg, m.keys.Refresh):
		m = m.reload()
	case key.Matches(msg, m.keys.Reconfigure):
		m.reconfigure = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// reload re-reads the data file and rebuilds the engine, keeping the current
// preferences and reading position.
func (m viewerModel) reload() viewerModel {
	root, err := loader.Load(m.path)
	if err != nil {
		m.loadErr = err
		m.logger.Debug("reload failed", "path", m.path, "error", err)
		return m
	}
	m.loadErr = nil
	m.datasets = dataset.Classify(root)
	m.engine = view.NewEngine(m.datasets, m.prefs)
	m.state.TotalSlides = m.engine.TotalSlides()
	if m.state.Slide > m.state.TotalSlides {
		m.state.Slide = m.state.TotalSlides
		m.state.Offset = 0
	}
	m.state.Clamp(m.totalLines(), m.rows())
	return m
}

func (m viewerModel) rows() int {
	return view.VisibleRows(m.height)
}

func (m viewerModel) totalLines() int {
	return m.engine.TotalLines(m.state.Slide, m.width)
}

func (m viewerModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	rows := m.rows()
	doc := m.engine.Compose(m.state.Slide, m.width)
	window := view.Window(doc, m.state.Offset, rows)

	var b strings.Builder
	rule := strings.Repeat("=", m.width)
	b.WriteString(m.styles.Rule.Render(rule) + "\n")
	b.WriteString(m.center(m.styles.Title.Render(m.headerText())) + "\n")
	b.WriteString(m.styles.Rule.Render(rule) + "\n")
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(m.styles.ErrText.Render(clip(m.loadErr.Error(), m.width)) + "\n")
	}
	for _, line := range window {
		b.WriteString(clip(line, m.width) + "\n")
	}
	for i := len(window); i < rows; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Rule.Render(strings.Repeat("-", m.width)) + "\n")
	b.WriteString(m.center(m.styles.Status.Render(m.statusText(len(doc), rows))) + "\n")
	b.WriteString(m.center(m.styles.Hotkeys.Render(m.hotkeysText())))
	return b.String()
}

func (m viewerModel) headerText() string {
	switch {
	case m.state.TotalSlides > 1:
		n := m.engine.Slides().Count(m.state.Slide)
		return fmt.Sprintf("vizr - %s | Slide %d/%d (%d data sets)", m.path, m.state.Slide, m.state.TotalSlides, n)
	case len(m.prefs) > 1:
		return fmt.Sprintf("vizr - %s | Mixed View (%d data sets)", m.path, len(m.prefs))
	default:
		return fmt.Sprintf("vizr - %s", m.path)
	}
}

func (m viewerModel) statusText(totalLines, rows int) string {
	if totalLines == 0 {
		return "No data"
	}
	start := m.state.Offset + 1
	end := m.state.Offset + rows
	if end > totalLines {
		end = totalLines
	}
	return fmt.Sprintf("Showing lines %d-%d of %d", start, end, totalLines)
}

func (m viewerModel) hotkeysText() string {
	if m.state.TotalSlides > 1 {
		return "[j/k]Scroll [g/G]Top/Bottom [←/→]Slides [r]Refresh [c]Config [h]Help [q]Quit"
	}
	return "[j/k]Scroll [g/G]Top/Bottom [r]Refresh [c]Config [h]Help [q]Quit"
}

func (m viewerModel) helpView() string {
	help := `vizr - Terminal Data Visualizer

Key Commands:
  j / ↓   Scroll down
  k / ↑   Scroll up
  g       Go to top
  G       Go to bottom
  ←  →    Previous / next slide
  r       Refresh (reload file)
  c       Reconfigure representations
  h       Show this help
  q       Quit

The file is also watched for changes and re-rendered automatically.

Press any key to continue...`
	return help
}

func (m viewerModel) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func clip(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
