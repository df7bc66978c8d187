package bookfetch

// ContentBlock holds the content extracted from one fetched page.
type ContentBlock struct {
	// Page is the page number that produced the block.
	Page int

	// Paragraphs are the raw paragraph texts anchored by the page marker,
	// in document order. They are not normalized.
	Paragraphs []string

	// Text is the visible text of the whole page. It is only used to
	// detect empty or repeated pages.
	Text string
}

// Extractor pulls page content out of fetched HTML.
type Extractor interface {
	// Extract parses html and collects the paragraphs that follow every
	// marker for the given page number.
	Extract(html string, page int) (*ContentBlock, error)
}
