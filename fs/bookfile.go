// Package fs provides file-based storage for assembled books.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/bookfetch"
)

// ParagraphSeparator is written after every paragraph.
const ParagraphSeparator = "\n\n"

// Ensure BookFile implements bookfetch.BookWriter at compile time.
var _ bookfetch.BookWriter = (*BookFile)(nil)

// BookFile implements bookfetch.BookWriter with atomic update semantics.
// Paragraphs are streamed to path.tmp as they arrive and the file is
// renamed to path on Commit. Abort removes the temporary file, leaving any
// previous file at path untouched.
type BookFile struct {
	path   string
	f      *os.File
	n      int
	closed bool
}

// CreateBookFile creates the temporary file for path, creating parent
// directories as needed.
func CreateBookFile(path string) (*BookFile, error) {
	if path == "" {
		return nil, bookfetch.Errorf(bookfetch.EINVALID, "output path required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(tempPath(path))
	if err != nil {
		return nil, err
	}

	return &BookFile{path: path, f: f}, nil
}

func tempPath(path string) string {
	return path + ".tmp"
}

// Path returns the final path of the book file.
func (b *BookFile) Path() string {
	return b.path
}

// Paragraphs returns the number of paragraphs written so far.
func (b *BookFile) Paragraphs() int {
	return b.n
}

// WriteParagraph appends text followed by a blank line. The write goes
// straight to the file without buffering.
func (b *BookFile) WriteParagraph(text string) error {
	if b.closed {
		return bookfetch.Errorf(bookfetch.EINVALID, "book file %s already closed", b.path)
	}
	if _, err := io.WriteString(b.f, text+ParagraphSeparator); err != nil {
		return err
	}
	b.n++
	return nil
}

// Commit syncs and closes the temporary file and moves it to the final path.
// If any step fails the temporary file is removed.
func (b *BookFile) Commit() error {
	if b.closed {
		return bookfetch.Errorf(bookfetch.EINVALID, "book file %s already closed", b.path)
	}
	b.closed = true

	if err := b.f.Sync(); err != nil {
		_ = b.f.Close()
		_ = os.Remove(tempPath(b.path))
		return err
	}
	if err := b.f.Close(); err != nil {
		_ = os.Remove(tempPath(b.path))
		return err
	}

	if err := os.Rename(tempPath(b.path), b.path); err != nil {
		_ = os.Remove(tempPath(b.path))
		return err
	}
	return nil
}

// Abort closes and removes the temporary file. Calling Abort after Commit
// is a no-op, so it can be deferred unconditionally.
func (b *BookFile) Abort() error {
	if b.closed {
		return nil
	}
	b.closed = true

	_ = b.f.Close()
	return os.Remove(tempPath(b.path))
}
