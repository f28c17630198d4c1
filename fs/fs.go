package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the default cache directory for godiff.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/godiff.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "godiff")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "godiff")
}
