package bookfetch

import "context"

// Converter turns the assembled text file into an e-book file.
type Converter interface {
	// Convert reads sourcePath and writes the converted book to destPath.
	// The source file is never modified.
	Convert(ctx context.Context, sourcePath, destPath string) error
}
