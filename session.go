// Package gild is a golden-file testing harness. A test captures output
// streams through a Session, which stages them in an isolated temporary
// directory; when the session is closed it either verifies every captured
// file byte-for-byte against its golden reference, printing a colorized
// diff on mismatch, or promotes the captured files to become the new
// references when update mode is enabled.
//
// Content is compared in fixed-size windows, so arbitrarily large files
// never load fully into memory. Paths whose final extension is .gz are
// gzip-compressed on write and decompressed transparently on read.
package gild

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// windowSize bounds how much of a stream is held in memory per comparison.
const windowSize = 1024

// updateEnv is the process-wide toggle between verify and update mode.
// Set to "1" to promote staged output instead of comparing it.
const updateEnv = "UPDATE_GOLDEN"

// Session stages captured test output and, on Close, verifies it against or
// promotes it to the golden files under its golden root. A session is
// single-threaded; independent sessions may run concurrently.
type Session struct {
	goldenRoot string
	stage      *stage
	paths      []string // registered relative paths, in request order
	update     *bool    // nil: consult updateEnv at finalize
	out        io.Writer
	done       bool
}

// Option configures a Session at construction.
type Option func(*Session)

// WithUpdate forces verify (false) or update (true) mode, overriding the
// UPDATE_GOLDEN environment variable. Without it the environment is
// consulted once, when the session finalizes.
func WithUpdate(update bool) Option {
	return func(s *Session) { s.update = &update }
}

// WithOutput redirects diff rendering away from stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// New creates a session whose golden references live under goldenRoot. The
// caller must finish the session with exactly one call to Close, or Abort on
// a failure path where verification would only mask the original problem.
func New(goldenRoot string, opts ...Option) (*Session, error) {
	st, err := newStage()
	if err != nil {
		return nil, err
	}
	s := &Session{goldenRoot: goldenRoot, stage: st, out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// File registers rel and returns a writer for its staged content. The writer
// must be closed before the session is; an unclosed writer compares as a
// truncated file. Requesting the same path again overwrites it.
func (s *Session) File(rel string) (io.WriteCloser, error) {
	if s.done {
		return nil, errors.New("session already finalized")
	}
	w, err := s.stage.create(rel)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(s.paths, rel) {
		s.paths = append(s.paths, rel)
	}
	return w, nil
}

// Close finalizes the session exactly once: in update mode every registered
// path is promoted to its golden location, otherwise each one is verified
// against its golden counterpart in registration order. The staging
// directory is removed either way; a removal failure is only reported when
// the finalize itself succeeded.
func (s *Session) Close() error {
	if s.done {
		return errors.New("session already finalized")
	}
	s.done = true
	var err error
	if s.updateMode() {
		err = s.promote()
	} else {
		err = s.verify()
	}
	if rerr := s.stage.remove(); err == nil {
		err = rerr
	}
	return err
}

// Abort releases the staging directory without verifying or promoting
// anything. Safe to call after Close, where it does nothing.
func (s *Session) Abort() {
	if s.done {
		return
	}
	s.done = true
	_ = os.RemoveAll(s.stage.root)
}

func (s *Session) updateMode() bool {
	if s.update != nil {
		return *s.update
	}
	return os.Getenv(updateEnv) == "1"
}

// promote copies every staged file over its golden counterpart, creating
// parent directories as needed. Compressed artifacts are copied as stored.
func (s *Session) promote() error {
	for _, rel := range s.paths {
		dst := filepath.Join(s.goldenRoot, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("failed to create %q: %w", filepath.Dir(dst), err)
		}
		if err := copyFile(s.stage.path(rel), dst); err != nil {
			return fmt.Errorf("failed to update golden file %q: %w", dst, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// verify compares registered paths in order and stops at the first one that
// differs or fails to open. A missing golden file is an open error, never a
// silent pass.
func (s *Session) verify() error {
	for _, rel := range s.paths {
		if err := s.verifyPath(rel); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) verifyPath(rel string) error {
	golden, err := Open(filepath.Join(s.goldenRoot, rel))
	if err != nil {
		return fmt.Errorf("failed to open golden file for %q: %w", rel, err)
	}
	defer golden.Close()
	actual, err := Open(s.stage.path(rel))
	if err != nil {
		return fmt.Errorf("failed to open staged file for %q: %w", rel, err)
	}
	defer actual.Close()

	// Process both sides in windows of windowSize bytes.
	for {
		old, err := readWindow(golden)
		if err != nil {
			return fmt.Errorf("failed to read golden file for %q: %w", rel, err)
		}
		new, err := readWindow(actual)
		if err != nil {
			return fmt.Errorf("failed to read staged file for %q: %w", rel, err)
		}
		if old == "" && new == "" {
			return nil
		}
		if n := compare(s.out, old, new); n != 0 {
			return &MismatchError{Path: rel, Count: n}
		}
	}
}

// readWindow reads up to windowSize bytes, returning an empty string once
// the stream is exhausted.
func readWindow(r io.Reader) (string, error) {
	buf := make([]byte, windowSize)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}
