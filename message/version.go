package message

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// Version is an HTTP protocol version as [Major, Minor].
// Only 1.0 and 1.1 are recognized.
type Version [2]uint

var (
	V10 = Version{1, 0}
	V11 = Version{1, 1}
)

// ParseVersion parses http version text (e.g. "HTTP/1.1") into a
// [Version]. Unrecognized versions are rejected.
func ParseVersion(b []byte) (Version, error) {
	prefix := []byte("HTTP/")
	if !bytes.HasPrefix(b, prefix) {
		return Version{}, errors.Errorf("http version prefix not found: %s", b)
	}

	first, second, found := bytes.Cut(b[len(prefix):], []byte{'.'})
	if !found {
		return Version{}, errors.Errorf("dot separator not found on version: %s", b)
	}

	major, err1 := strconv.ParseUint(string(first), 10, 64)
	minor, err2 := strconv.ParseUint(string(second), 10, 64)
	if err1 != nil || err2 != nil {
		return Version{}, errors.Errorf("http version is not convertable to int: %s", b)
	}

	ver := Version{uint(major), uint(minor)}
	if ver != V10 && ver != V11 {
		return Version{}, errors.Errorf("unsupported http version: %s", b)
	}

	return ver, nil
}

func (ver Version) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("HTTP/")
	buf.WriteString(strconv.FormatUint(uint64(ver[0]), 10))
	buf.WriteByte('.')
	buf.WriteString(strconv.FormatUint(uint64(ver[1]), 10))
	return buf.Bytes()
}

func (ver Version) String() string { return string(ver.Text()) }
