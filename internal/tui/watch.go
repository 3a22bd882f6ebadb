package tui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// newWatcher watches the directory holding path so edits that replace the
// file (the common editor save pattern) are still observed. The returned
// string is the absolute path events are filtered against.
func newWatcher(path string) (*fsnotify.Watcher, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, "", err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, "", err
	}
	return w, abs, nil
}
