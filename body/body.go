// Package body models request and response payloads as a closed set
// of byte sources.
package body

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Kind discriminates the byte source behind a Body.
type Kind uint

const (
	KindEmpty Kind = iota
	KindBytes
	KindFile
	KindReader
)

// Body is a single-use byte source. Every kind except KindReader
// knows its length before transmission; a KindReader body forces the
// encoder into chunked framing.
type Body struct {
	kind Kind

	data []byte

	path string
	size uint64

	r io.Reader
}

// Empty returns a zero-byte body.
func Empty() Body { return Body{kind: KindEmpty} }

// FromBytes wraps b. The caller must not mutate b afterwards.
func FromBytes(b []byte) Body {
	return Body{kind: KindBytes, data: b}
}

// FromString wraps s.
func FromString(s string) Body {
	return Body{kind: KindBytes, data: []byte(s)}
}

// FromFile stats path so the length is known before send. The file
// content is read incrementally at send time, not loaded here.
func FromFile(path string) (Body, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Body{}, errors.Wrapf(err, "stating %q", path)
	}
	if info.IsDir() {
		return Body{}, errors.Errorf("%q is a directory", path)
	}

	return Body{kind: KindFile, path: path, size: uint64(info.Size())}, nil
}

// FromReader wraps a streaming source of unknown length.
func FromReader(r io.Reader) Body {
	return Body{kind: KindReader, r: r}
}

func (b *Body) Kind() Kind { return b.kind }

// KnownLength returns the byte length usable for a Content-Length
// header, or ok=false when the length cannot be determined before
// transmission.
func (b *Body) KnownLength() (n uint64, ok bool) {
	switch b.kind {
	case KindEmpty:
		return 0, true
	case KindBytes:
		return uint64(len(b.data)), true
	case KindFile:
		return b.size, true
	}
	return 0, false
}

// WriteTo streams the content into w. File-backed bodies open the
// file lazily and copy it in bounded chunks; the handle is released
// on every path. A body is a single-pass source: WriteTo drains it.
func (b *Body) WriteTo(w io.Writer) (int64, error) {
	switch b.kind {
	case KindEmpty:
		return 0, nil

	case KindBytes:
		n, err := w.Write(b.data)
		if err != nil {
			return int64(n), errors.Wrap(err, "writing bytes")
		}
		return int64(n), nil

	case KindFile:
		f, err := os.Open(b.path)
		if err != nil {
			return 0, errors.Wrapf(err, "opening %q", b.path)
		}
		defer f.Close()

		n, err := io.Copy(w, f)
		if err != nil {
			return n, errors.Wrapf(err, "streaming %q", b.path)
		}
		return n, nil

	case KindReader:
		n, err := io.Copy(w, b.r)
		if err != nil {
			return n, errors.Wrap(err, "streaming reader")
		}
		return n, nil
	}

	return 0, nil
}

// Bytes returns the in-memory content of the body. It is meaningful
// only for KindEmpty and KindBytes; other kinds yield nil.
func (b *Body) Bytes() []byte { return b.data }
