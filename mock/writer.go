package mock

import "github.com/fwojciec/bookfetch"

var _ bookfetch.BookWriter = (*BookWriter)(nil)

// BookWriter is a mock implementation of bookfetch.BookWriter.
type BookWriter struct {
	WriteParagraphFn func(text string) error
	CommitFn         func() error
	AbortFn          func() error
}

func (w *BookWriter) WriteParagraph(text string) error {
	return w.WriteParagraphFn(text)
}

func (w *BookWriter) Commit() error {
	return w.CommitFn()
}

func (w *BookWriter) Abort() error {
	return w.AbortFn()
}
