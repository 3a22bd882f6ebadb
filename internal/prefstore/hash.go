package prefstore

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
)

// FileHash identifies a data file by absolute path, base name and content.
// Editing or renaming a file changes its hash, so it gets a fresh
// configuration. A missing file hashes with empty content.
func FileHash(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	content, err := os.ReadFile(path)
	if err != nil {
		content = nil
	}

	h := md5.New()
	fmt.Fprintf(h, "%s:%s:", abs, filepath.Base(path))
	h.Write(content)
	return fmt.Sprintf("%x", h.Sum(nil))
}
