package wire

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"requestgo/rule"
)

// ErrMalformedChunkSize is returned when a chunk-size line or chunk
// delimiter violates the chunked coding grammar.
var ErrMalformedChunkSize = errors.New("chunk framing is malformed")

// chunkedWriter frames everything written through it as chunked
// coding. Close writes the terminal zero-size chunk.
type chunkedWriter struct {
	bw *bufio.Writer
}

var _ io.WriteCloser = (*chunkedWriter)(nil)

func newChunkedWriter(bw *bufio.Writer) *chunkedWriter {
	return &chunkedWriter{bw: bw}
}

func (cw *chunkedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		// A zero-size chunk means EOF; only Close may emit it.
		return 0, nil
	}

	size := strconv.FormatUint(uint64(len(p)), 16)
	if err := writeLine(cw.bw, []byte(size)); err != nil {
		return 0, errors.Wrap(err, "writing chunk size")
	}

	if err := writeLine(cw.bw, p); err != nil {
		return 0, errors.Wrap(err, "writing chunk data")
	}

	return len(p), nil
}

func (cw *chunkedWriter) Close() error {
	if err := writeLine(cw.bw, []byte{'0'}); err != nil {
		return errors.Wrap(err, "writing last chunk")
	}

	// No trailers are sent; the empty line ends the body.
	return writeLine(cw.bw, nil)
}

// readChunked decodes a chunked body off br until the terminal chunk,
// consuming and discarding any trailer block.
func readChunked(br *bufio.Reader, limit uint) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	crlf := make([]byte, 2)

	for {
		size, err := readChunkSize(br, limit)
		if err != nil {
			return nil, err
		}

		if size == 0 {
			if err := discardTrailers(br, limit); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}

		if _, err := io.CopyN(buf, br, int64(size)); err != nil {
			return nil, unexpectedEOF(err, "reading chunk data")
		}

		if _, err := io.ReadFull(br, crlf); err != nil {
			return nil, unexpectedEOF(err, "reading chunk delimiter")
		}
		if !bytes.Equal(crlf, rule.CRLF) {
			return nil, errors.Wrap(ErrMalformedChunkSize, "chunk data is not CRLF terminated")
		}
	}
}

func readChunkSize(br *bufio.Reader, limit uint) (uint64, error) {
	line, err := readLine(br, limit)
	if err != nil {
		if errors.Is(err, errMissingCR) || errors.Is(err, errLineTooLong) {
			return 0, errors.Wrap(ErrMalformedChunkSize, err.Error())
		}
		return 0, errors.Wrap(err, "reading chunk-size line")
	}

	// Chunk extensions after ';' are recognized but not exposed.
	sizeRaw, _, _ := bytes.Cut(line, []byte{';'})
	sizeRaw = trimOWS(sizeRaw)

	size, err := strconv.ParseUint(string(sizeRaw), 16, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedChunkSize, "chunk size: %q", sizeRaw)
	}

	return size, nil
}

// discardTrailers consumes trailer fields after the terminal chunk.
// They are not merged into the response headers.
func discardTrailers(br *bufio.Reader, limit uint) error {
	for {
		line, err := readLine(br, limit)
		if err != nil {
			if errors.Is(err, errMissingCR) || errors.Is(err, errLineTooLong) {
				return errors.Wrap(ErrMalformedChunkSize, err.Error())
			}
			return errors.Wrap(err, "reading trailer line")
		}

		if len(line) == 0 {
			return nil
		}
	}
}

// unexpectedEOF normalizes short-stream conditions to
// io.ErrUnexpectedEOF so a truncated body never decodes silently.
func unexpectedEOF(err error, msg string) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrap(err, msg)
}
