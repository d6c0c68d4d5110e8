package bytesutil

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadUntil(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		delim    string
		expected string
		wantErr  error
	}{
		{
			desc:     "single-byte delim",
			input:    "Hello\nWorld",
			delim:    "\n",
			expected: "Hello\n",
		},
		{
			desc:     "multi-byte delim",
			input:    "Hey\rWorld\r\nRest",
			delim:    "\r\n",
			expected: "Hey\rWorld\r\n",
		},
		{
			desc:    "delim never arrives",
			input:   "no terminator here",
			delim:   "\r\n",
			wantErr: io.ErrUnexpectedEOF,
		},
		{
			desc:    "empty input",
			input:   "",
			delim:   "\n",
			wantErr: io.ErrUnexpectedEOF,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			br := bufio.NewReader(strings.NewReader(tc.input))

			b, err := ReadUntil(br, []byte(tc.delim))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, string(b))
		})
	}
}
