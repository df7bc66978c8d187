package bookfetch_test

import (
	"testing"

	"github.com/fwojciec/bookfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageURL_URL(t *testing.T) {
	t.Parallel()

	u := bookfetch.PageURL("http://example.com/read.php?book=38&page={page}")

	assert.Equal(t, "http://example.com/read.php?book=38&page=1", u.URL(1))
	assert.Equal(t, "http://example.com/read.php?book=38&page=712", u.URL(712))
}

func TestPageURL_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     bookfetch.PageURL
		wantErr bool
	}{
		{name: "valid http", url: "http://example.com/read.php?book=1&page={page}"},
		{name: "valid https path", url: "https://example.com/book/{page}.html"},
		{name: "empty", url: "", wantErr: true},
		{name: "missing placeholder", url: "http://example.com/read.php?page=1", wantErr: true},
		{name: "unsupported scheme", url: "ftp://example.com/{page}", wantErr: true},
		{name: "relative", url: "read.php?page={page}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.url.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, bookfetch.EINVALID, bookfetch.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
