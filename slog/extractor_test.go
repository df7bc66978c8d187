package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bookfetch"
	"github.com/fwojciec/bookfetch/mock"
	bookslog "github.com/fwojciec/bookfetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs page, paragraph count and text hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, page int) (*bookfetch.ContentBlock, error) {
				return &bookfetch.ContentBlock{
					Page:       page,
					Paragraphs: []string{"a", "b"},
					Text:       "whole page",
				}, nil
			},
		}

		extractor := bookslog.NewLoggingExtractor(inner, logger)
		block, err := extractor.Extract("<html></html>", 42)

		require.NoError(t, err)
		assert.Equal(t, 42, block.Page)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "page=42")
		assert.Contains(t, output, "paragraphs=2")
		assert.Contains(t, output, "text_hash="+bookslog.TextHash("whole page"))
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, page int) (*bookfetch.ContentBlock, error) {
				return nil, errors.New("bad markup")
			},
		}

		extractor := bookslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html>", 3)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "page=3")
		assert.Contains(t, output, "err=\"bad markup\"")
		assert.NotContains(t, output, "text_hash")
	})
}

func TestTextHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ef46db3751d8e999", bookslog.TextHash(""))
	assert.Equal(t, bookslog.TextHash("same"), bookslog.TextHash("same"))
	assert.NotEqual(t, bookslog.TextHash("same"), bookslog.TextHash("same "))
	assert.Len(t, bookslog.TextHash("anything"), 16)
}
