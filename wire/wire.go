// Package wire serializes requests into HTTP/1.x byte sequences and
// parses byte streams back into responses, applying body framing
// rules (length-delimited, chunked, close-delimited).
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112
package wire

import (
	"bufio"
	"bytes"

	"github.com/pkg/errors"

	"requestgo/bytesutil"
	"requestgo/rule"
)

var (
	errLineTooLong = errors.New("line length exceeds limit")
	errMissingCR   = errors.New("missing CR before LF")
)

// readLine reads a CRLF-terminated line from br and strips the
// terminator. Lines are bounded by limit to keep lookahead finite.
func readLine(br *bufio.Reader, limit uint) ([]byte, error) {
	b, err := bytesutil.ReadUntil(br, []byte{rule.LF})
	if err != nil {
		return nil, err
	}

	if limit > 0 && uint(len(b)) > limit {
		return nil, errLineTooLong
	}

	b = b[:len(b)-1] // Remove LF.

	if len(b) == 0 || b[len(b)-1] != rule.CR {
		return nil, errMissingCR
	}
	b = b[:len(b)-1] // Remove CR.

	return b, nil
}

func writeLine(bw *bufio.Writer, line []byte) error {
	if _, err := bw.Write(line); err != nil {
		return err
	}
	_, err := bw.Write(rule.CRLF)
	return err
}

func trimOWS(b []byte) []byte {
	return bytes.TrimFunc(b, rule.IsWhitespace)
}
