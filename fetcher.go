package bookfetch

import "context"

// Fetcher retrieves the HTML of a single book page.
type Fetcher interface {
	// Fetch issues one request for the URL and returns the page body.
	// A page that does not exist (any non-200 response) is reported with
	// an ENOTFOUND error. Other errors are transport failures.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
