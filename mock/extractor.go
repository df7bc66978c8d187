package mock

import "github.com/fwojciec/bookfetch"

var _ bookfetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bookfetch.Extractor.
type Extractor struct {
	ExtractFn func(html string, page int) (*bookfetch.ContentBlock, error)
}

func (e *Extractor) Extract(html string, page int) (*bookfetch.ContentBlock, error) {
	return e.ExtractFn(html, page)
}
