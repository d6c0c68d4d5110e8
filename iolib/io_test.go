package iolib

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWriteFull(t *testing.T) {
	data := []byte("Hello, World!")
	var buf bytes.Buffer

	written, err := WriteFull(&buf, data)
	assert.NoError(t, err)
	assert.Equal(t, uint(len(data)), written)
	assert.Equal(t, data, buf.Bytes())
}

// chokeWriter accepts at most two bytes per call.
type chokeWriter struct {
	buf  bytes.Buffer
	fail bool
}

func (cw *chokeWriter) Write(p []byte) (int, error) {
	if cw.fail {
		return 0, errors.New("broken pipe")
	}
	if len(p) > 2 {
		p = p[:2]
	}
	return cw.buf.Write(p)
}

func TestWriteFullRetriesPartialWrites(t *testing.T) {
	data := []byte("ABCDEFG")
	cw := &chokeWriter{}

	written, err := WriteFull(cw, data)
	assert.NoError(t, err)
	assert.Equal(t, uint(len(data)), written)
	assert.Equal(t, data, cw.buf.Bytes())
}

func TestWriteFullSurfacesError(t *testing.T) {
	cw := &chokeWriter{fail: true}

	written, err := WriteFull(cw, []byte("data"))
	assert.Error(t, err)
	assert.Equal(t, uint(0), written)
}
