package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/bookfetch"
	"github.com/fwojciec/bookfetch/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookfetch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads all fields", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
url: "https://example.com/read.php?book=7&page={page}"
output_file: out/book.txt
mobi_file: out/book.mobi
max_pages: 120
strike_limit: 5
timeout: 30s
rate_limit: 0.5
user_agent: bookfetch/1.0
marker_selector: img.pagenum
converter: /opt/calibre/ebook-convert
`)

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, bookfetch.Config{
			URL:            "https://example.com/read.php?book=7&page={page}",
			OutputFile:     "out/book.txt",
			MobiFile:       "out/book.mobi",
			MaxPages:       120,
			StrikeLimit:    5,
			Timeout:        30 * time.Second,
			RateLimit:      0.5,
			UserAgent:      "bookfetch/1.0",
			MarkerSelector: "img.pagenum",
			ConverterBin:   "/opt/calibre/ebook-convert",
		}, cfg)
	})

	t.Run("partial file merges over defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "max_pages: 50\n")

		cfg, err := yaml.LoadConfig(path)
		require.NoError(t, err)
		merged := bookfetch.DefaultConfig().Merge(cfg)

		assert.Equal(t, 50, merged.MaxPages)
		assert.Equal(t, bookfetch.DefaultOutputFile, merged.OutputFile)
		assert.Equal(t, bookfetch.DefaultURL, merged.URL)
	})

	t.Run("empty file yields zero config", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, bookfetch.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, "max_page: 10\n"))

		require.Error(t, err)
		assert.Equal(t, bookfetch.EINVALID, bookfetch.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(writeConfig(t, "max_pages: [\n"))

		require.Error(t, err)
		assert.Equal(t, bookfetch.EINVALID, bookfetch.ErrorCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, yaml.ErrConfigNotFound)
	})
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "max_pages: 1\n")

	assert.Equal(t, path, yaml.FindConfigFile(path))
	assert.Empty(t, yaml.FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
