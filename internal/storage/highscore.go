package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile persists a single high score as a decimal integer in a text file.
type HighScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewHighScoreFile returns a store backed by the file at path. A leading ~ is
// expanded to the home directory. The file is not touched until Load or Save.
func NewHighScoreFile(path string) *HighScoreFile {
	return &HighScoreFile{path: expandHome(path)}
}

// Path returns the resolved file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the stored high score. A missing file is not an error and
// loads as 0; an unreadable or malformed file loads as 0 with an error.
func (f *HighScoreFile) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *HighScoreFile) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, nil
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score %q: %w", text, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", score)
	}
	return score, nil
}

// Save writes score if it beats the stored value. The stored value never
// decreases, so concurrent sessions cannot overwrite a better score.
func (f *HighScoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// A corrupt file is replaced
	if current, err := f.read(); err == nil && score <= current {
		return nil
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Already renamed on success

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
