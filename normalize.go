package bookfetch

import "strings"

// Normalize cleans a raw paragraph: dialogue dashes followed by a
// non-breaking space are dropped, remaining non-breaking spaces become
// ordinary spaces, and surrounding whitespace is trimmed.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u2013\u00a0", "")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(s)
}
