package gild

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// compressedExt marks artifacts that are stored gzip-compressed. The
// transform is purely path-driven: no other state decides it.
const compressedExt = ".gz"

func isCompressed(path string) bool {
	return filepath.Ext(path) == compressedExt
}

// Open opens an artifact for reading, decompressing transparently when the
// path carries the compressed extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isCompressed(path) {
		return &artifactReader{Reader: bufio.NewReader(f), closers: []io.Closer{f}}, nil
	}
	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &artifactReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

// createArtifact creates an artifact for writing, compressing at the best
// ratio when the path carries the compressed extension.
func createArtifact(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !isCompressed(path) {
		bw := bufio.NewWriter(f)
		return &artifactWriter{Writer: bw, flush: bw.Flush, closers: []io.Closer{f}}, nil
	}
	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &artifactWriter{Writer: zw, closers: []io.Closer{zw, f}}, nil
}

// artifactReader pairs a possibly transformed stream with the closers that
// release it, outermost first.
type artifactReader struct {
	io.Reader
	closers []io.Closer
}

func (r *artifactReader) Close() error {
	return closeAll(r.closers)
}

// artifactWriter is the writing counterpart; flush, when set, runs before
// the closers so buffered raw streams hit the disk.
type artifactWriter struct {
	io.Writer
	flush   func() error
	closers []io.Closer
}

func (w *artifactWriter) Close() error {
	var err error
	if w.flush != nil {
		err = w.flush()
	}
	if cerr := closeAll(w.closers); err == nil {
		err = cerr
	}
	return err
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, c := range closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
