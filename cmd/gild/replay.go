package main

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"gild"
)

type replayOptions struct {
	dir        string // directory of produced output
	goldenFlag string // --golden value, empty means manifest discovery
	update     bool
	out        io.Writer
}

// replay streams every regular file under opts.dir through a fresh session
// and finalizes it in the requested mode. Compressed artifacts are
// decompressed on read and recompressed by the session writer, so the
// comparison always runs over the logical content.
func replay(opts replayOptions) error {
	goldenRoot, err := resolveGoldenRoot(opts.goldenFlag, opts.dir)
	if err != nil {
		return err
	}
	session, err := gild.New(goldenRoot, gild.WithUpdate(opts.update), gild.WithOutput(opts.out))
	if err != nil {
		return err
	}
	staged := false
	defer func() {
		if !staged {
			session.Abort()
		}
	}()

	err = filepath.WalkDir(opts.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(opts.dir, path)
		if err != nil {
			return err
		}
		return stageFile(session, path, filepath.ToSlash(rel))
	})
	if err != nil {
		return fmt.Errorf("failed to stage %q: %w", opts.dir, err)
	}

	staged = true
	return session.Close()
}

func stageFile(session *gild.Session, path, rel string) error {
	src, err := gild.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := session.File(rel)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
