package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir resolves the curriculum data directory in priority order:
// 1. STUDYMAP_DATA environment variable
// 2. $XDG_DATA_HOME/studymap/knowledge
// 3. ~/.local/share/studymap/knowledge
func DefaultDataDir() (string, error) {
	if p := os.Getenv("STUDYMAP_DATA"); p != "" {
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

	return filepath.Join(dataHome, "studymap", "knowledge"), nil
}
