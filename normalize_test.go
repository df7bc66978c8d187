package bookfetch_test

import (
	"testing"

	"github.com/fwojciec/bookfetch"
	"github.com/stretchr/testify/assert"
)

const (
	nbsp = "\u00a0"
	dash = "\u2013"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "Hello world",
			want: "Hello world",
		},
		{
			name: "drops opening dialogue dash",
			in:   dash + nbsp + "Where are you going?",
			want: "Where are you going?",
		},
		{
			name: "replaces non-breaking spaces",
			in:   "one" + nbsp + "two" + nbsp + "three",
			want: "one two three",
		},
		{
			name: "trims surrounding whitespace",
			in:   "\n\t  text \r\n",
			want: "text",
		},
		{
			name: "keeps dash followed by ordinary space",
			in:   dash + " not dialogue",
			want: dash + " not dialogue",
		},
		{
			name: "drops dash sequence inside text",
			in:   "He said " + dash + nbsp + "nothing.",
			want: "He said nothing.",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "only non-breaking spaces",
			in:   nbsp + nbsp,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, bookfetch.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		dash + nbsp + dash + nbsp + "double dash",
		nbsp + dash + nbsp + nbsp + "leading nbsp",
		"mixed " + dash + nbsp + "content" + nbsp,
		dash + dash + nbsp + nbsp,
		"  ordinary text  ",
	}

	for _, in := range inputs {
		once := bookfetch.Normalize(in)
		twice := bookfetch.Normalize(once)

		assert.Equal(t, once, twice, "input %q", in)
		assert.NotContains(t, once, nbsp)
		assert.NotContains(t, once, dash+nbsp)
	}
}
