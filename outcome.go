package bookfetch

// OutcomeKind tells whether a run continues and, if not, why it stopped.
type OutcomeKind int

const (
	// Continue means the page was processed and the next one should be fetched.
	Continue OutcomeKind = iota
	// EndOfBook means consecutive empty or repeated pages signalled the end.
	EndOfBook
	// FetchFailed means the page does not exist.
	FetchFailed
	// Ceiling means the maximum page count was reached.
	Ceiling
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case EndOfBook:
		return "end_of_book"
	case FetchFailed:
		return "fetch_failed"
	case Ceiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one page.
type Outcome struct {
	Kind OutcomeKind

	// Page is the page number the outcome was produced for.
	Page int

	// EndPage is the last page of the book as detected by the stop
	// condition. Zero while the run continues.
	EndPage int

	// Reason is a human readable stop cause.
	Reason string
}

// Done reports whether the run should stop.
func (o Outcome) Done() bool {
	return o.Kind != Continue
}
