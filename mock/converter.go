package mock

import (
	"context"

	"github.com/fwojciec/bookfetch"
)

var _ bookfetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookfetch.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, sourcePath, destPath string) error
}

func (c *Converter) Convert(ctx context.Context, sourcePath, destPath string) error {
	return c.ConvertFn(ctx, sourcePath, destPath)
}
