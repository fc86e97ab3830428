package gild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// stage is an isolated staging directory that holds candidate output files
// until the owning session decides whether to verify or promote them.
type stage struct {
	root string
}

func newStage() (*stage, error) {
	dir, err := os.MkdirTemp("", "gild-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	return &stage{root: dir}, nil
}

// path resolves a relative artifact path inside the staging root.
func (s *stage) path(rel string) string {
	return filepath.Join(s.root, rel)
}

// create opens a writer for rel inside the staging root, creating parent
// directories as needed. Creating the same path twice overwrites.
func (s *stage) create(rel string) (io.WriteCloser, error) {
	full := s.path(rel)
	if dir := filepath.Dir(full); dir != s.root {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %q: %w", dir, err)
		}
	}
	w, err := createArtifact(full)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", full, err)
	}
	return w, nil
}

func (s *stage) remove() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("failed to remove staging directory %q: %w", s.root, err)
	}
	return nil
}
