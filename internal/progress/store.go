package progress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt marks a progress file that existed but could not be parsed.
// Loads that return it still return a usable (empty) record map; callers log
// the condition and move on.
var ErrCorrupt = errors.New("progress file corrupt")

// Store is the durable key-value collaborator for progress records.
// Save is the commit point for every mutation: callers mutate in memory,
// then persist immediately, and roll back on failure.
type Store interface {
	// Load returns all records. A missing backing file yields an empty,
	// non-nil map and no error. A corrupt file yields an empty map and an
	// error wrapping ErrCorrupt.
	Load() (map[string]*Record, error)

	// Save replaces the durable document with the given records.
	Save(records map[string]*Record) error
}

// DefaultPath resolves the progress file location in priority order:
// 1. OPENBOOK_PROGRESS environment variable
// 2. $XDG_DATA_HOME/openbook/progress.json
// 3. ~/.local/share/openbook/progress.json
func DefaultPath() (string, error) {
	if p := os.Getenv("OPENBOOK_PROGRESS"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "openbook", "progress.json"), nil
}
