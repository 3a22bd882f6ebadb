package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/vizr/internal/cli/config"
	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/loader"
	"github.com/leapstack-labs/vizr/internal/prefstore"
	"github.com/leapstack-labs/vizr/internal/view"
)

// RunViewer loads the file, obtains preferences (stored or via the wizard)
// and runs the interactive viewer. Choosing reconfigure from the viewer drops
// the saved preferences and starts over.
func RunViewer(ctx context.Context, path string, store *prefstore.Store, cfg *config.Config) error {
	logger := config.GetLogger(ctx)

	for {
		root, err := loader.Load(path)
		if err != nil {
			return err
		}
		datasets := dataset.Classify(root)
		if len(datasets) == 0 {
			return fmt.Errorf("no displayable data in %s", path)
		}

		prefs, err := store.Load(path)
		if err != nil {
			return err
		}
		if prefs == nil {
			prefs, err = RunWizard(path, datasets, cfg.Width)
			if err != nil {
				return err
			}
			if prefs == nil {
				return nil
			}
			if err := store.Save(path, prefs); err != nil {
				// Viewing still works without persistence.
				logger.Warn("could not save preferences", "path", path, "error", err)
			}
		}

		watcher, watchPath, err := newWatcher(path)
		if err != nil {
			logger.Debug("file watching unavailable", "path", path, "error", err)
			watcher = nil
		}

		m := newViewerModel(path, datasets, prefs, cfg.Width, cfg.Height, watcher, watchPath, logger)
		p := tea.NewProgram(m, tea.WithAltScreen())
		out, err := p.Run()
		if watcher != nil {
			watcher.Close()
		}
		if err != nil {
			return fmt.Errorf("run viewer: %w", err)
		}

		final, ok := out.(viewerModel)
		if !ok || !final.reconfigure {
			return nil
		}
		if _, err := store.Delete(path); err != nil {
			return err
		}
	}
}

// RunWizard walks the user through representation choices for each data set.
// It returns nil (and no error) when the user cancels.
func RunWizard(path string, datasets []*dataset.Dataset, width int) (map[string]view.Config, error) {
	p := tea.NewProgram(newWizardModel(path, datasets, width))
	out, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run wizard: %w", err)
	}
	final, ok := out.(wizardModel)
	if !ok || final.aborted || !final.done {
		return nil, nil
	}
	return final.Result(), nil
}

// RunPicker shows previously configured files and returns the chosen path,
// or "" when the user cancels or nothing is selectable.
func RunPicker(ctx context.Context, store *prefstore.Store) (string, error) {
	entries, err := store.List()
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(newPickerModel(entries), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	final, ok := out.(pickerModel)
	if !ok {
		return "", nil
	}
	return final.choice, nil
}
