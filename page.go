package bookfetch

import (
	"net/url"
	"strconv"
	"strings"
)

// PagePlaceholder marks where the page number goes in a PageURL.
const PagePlaceholder = "{page}"

// PageURL is a URL template for the pages of one book, for example
// "http://book-online.com.ua/read.php?book=38&page={page}".
type PageURL string

// URL returns the address of the given page.
func (u PageURL) URL(page int) string {
	return strings.ReplaceAll(string(u), PagePlaceholder, strconv.Itoa(page))
}

// Validate returns an error if the template cannot produce page URLs.
func (u PageURL) Validate() error {
	if u == "" {
		return Errorf(EINVALID, "page URL template required")
	}
	if !strings.Contains(string(u), PagePlaceholder) {
		return Errorf(EINVALID, "page URL template %q has no %s placeholder", string(u), PagePlaceholder)
	}
	parsed, err := url.Parse(u.URL(1))
	if err != nil {
		return Errorf(EINVALID, "invalid page URL template: %v", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Errorf(EINVALID, "page URL template must be http or https, got %q", parsed.Scheme)
	}
	return nil
}
