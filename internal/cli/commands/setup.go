// Package commands implements vizr's non-interactive subcommands.
package commands

import (
	"os"

	"golang.org/x/term"

	"github.com/leapstack-labs/vizr/internal/cli/config"
	"github.com/leapstack-labs/vizr/internal/prefstore"
)

// openStore opens the preference database from the active configuration.
func openStore() (*prefstore.Store, *config.Config, error) {
	cfg := config.GetCurrentConfig()
	store, err := prefstore.Open(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// terminalWidth resolves the render width: configured override first, then
// the detected terminal, then a conventional default.
func terminalWidth(cfg *config.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
