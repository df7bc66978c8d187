// Package calibre implements bookfetch.Converter by running Calibre's
// ebook-convert command-line tool.
package calibre

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/bookfetch"
)

// DefaultBin is the converter executable, resolved through PATH.
const DefaultBin = bookfetch.DefaultConverterBin

// maxStderr bounds how much of the tool's stderr is kept in an ExitError.
const maxStderr = 2048

// Ensure Converter implements bookfetch.Converter at compile time.
var _ bookfetch.Converter = (*Converter)(nil)

// ExitError reports a converter run that exited with a non-zero status.
type ExitError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Tool, e.ExitCode, e.Stderr)
}

// Converter runs ebook-convert as a subprocess.
type Converter struct {
	bin    string
	output io.Writer
}

// Option configures a Converter.
type Option func(*Converter)

// WithBin sets the converter executable name or path.
func WithBin(bin string) Option {
	return func(c *Converter) {
		c.bin = bin
	}
}

// WithOutput forwards the tool's stdout and stderr to w.
func WithOutput(w io.Writer) Option {
	return func(c *Converter) {
		c.output = w
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		bin:    DefaultBin,
		output: io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert runs "<bin> sourcePath destPath". The tool picks input and
// output formats from the file extensions.
func (c *Converter) Convert(ctx context.Context, sourcePath, destPath string) error {
	if _, err := os.Stat(sourcePath); err != nil {
		return bookfetch.Errorf(bookfetch.ENOTFOUND, "source file %s: %v", sourcePath, err)
	}

	path, err := exec.LookPath(c.bin)
	if err != nil {
		return bookfetch.Errorf(bookfetch.ENOTFOUND, "converter %q not found in PATH", c.bin)
	}

	// exec copies stdout and stderr on separate goroutines.
	out := &syncWriter{w: c.output}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, sourcePath, destPath)
	cmd.Stdout = out
	cmd.Stderr = io.MultiWriter(out, &stderr)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{
				Tool:     c.bin,
				ExitCode: exitErr.ExitCode(),
				Stderr:   tail(strings.TrimSpace(stderr.String()), maxStderr),
			}
		}
		return fmt.Errorf("run %s: %w", c.bin, err)
	}

	return nil
}

// tail returns at most the last n bytes of s, starting on a rune boundary.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := len(s) - n
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return s[i:]
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
