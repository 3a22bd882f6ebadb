package config

import (
	"os"
	"path/filepath"
)

// DefaultOutput is the format non-interactive commands use when none is
// configured.
const DefaultOutput = "table"

// Config is the resolved application configuration.
type Config struct {
	// StorePath is the location of the preference database.
	StorePath string `koanf:"store_path"`

	// Width and Height override the detected terminal size when non-zero.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	Verbose bool `koanf:"verbose"`

	// Output selects the format for non-interactive commands (table|json).
	Output string `koanf:"output"`
}

// DefaultStorePath places the preference database under the user's home
// directory, falling back to a relative path when home is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vizr", "configs.db")
	}
	return filepath.Join(home, ".vizr", "configs.db")
}
