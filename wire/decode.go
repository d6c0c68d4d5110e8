package wire

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"requestgo/body"
	"requestgo/header"
	"requestgo/message"
	"requestgo/rule"
	"requestgo/status"
)

var (
	ErrMalformedStatusLine  = errors.New("status line is malformed")
	ErrMalformedHeaderLine  = errors.New("header line is malformed")
	ErrInvalidContentLength = errors.New("Content-Length value is invalid")
)

type DecodeOptions struct {
	// HeadResponse marks the stream as the answer to a HEAD request,
	// whose body is empty by definition regardless of headers.
	HeadResponse bool

	// MaxLineLength bounds the status line and each header line.
	// Zero selects the default.
	MaxLineLength uint
}

const defaultMaxLineLength = 8192

// Decoder parses response messages off a byte stream. Parsing is
// strictly left to right and never reads past what framing requires,
// so the same decoder works on a memory buffer or a live socket.
type Decoder struct {
	br   *bufio.Reader
	opts DecodeOptions
}

func NewDecoder(r io.Reader, opts DecodeOptions) *Decoder {
	if opts.MaxLineLength == 0 {
		opts.MaxLineLength = defaultMaxLineLength
	}
	return &Decoder{br: bufio.NewReader(r), opts: opts}
}

// Decode reads one complete response. On a framing error no partial
// response is returned; the exchange is unrecoverable.
func (d *Decoder) Decode() (*message.Response, error) {
	res := &message.Response{Headers: &header.Map{}}

	if err := d.decodeStatusLine(res); err != nil {
		return nil, errors.Wrap(err, "parsing status line")
	}

	if err := d.decodeHeaders(res.Headers); err != nil {
		return nil, errors.Wrap(err, "parsing headers")
	}

	if err := d.decodeBody(res); err != nil {
		return nil, errors.Wrap(err, "reading body")
	}

	return res, nil
}

func (d *Decoder) decodeStatusLine(res *message.Response) error {
	line, err := readLine(d.br, d.opts.MaxLineLength)
	if err != nil {
		if errors.Is(err, errMissingCR) || errors.Is(err, errLineTooLong) {
			return ErrMalformedStatusLine
		}
		return errors.Wrap(err, "reading line")
	}

	parts := bytes.SplitN(line, []byte{rule.SP}, 3)
	if len(parts) < 2 {
		return ErrMalformedStatusLine
	}

	ver, err := message.ParseVersion(parts[0])
	if err != nil {
		return ErrMalformedStatusLine
	}

	codeRaw := parts[1]
	if len(codeRaw) != 3 || !isDigits(codeRaw) {
		return ErrMalformedStatusLine
	}
	code64, _ := strconv.ParseUint(string(codeRaw), 10, 64)

	code, err := status.From(uint(code64))
	if err != nil {
		return err
	}

	res.Version = ver
	res.Status = code
	// The reason phrase is not validated and may be absent.
	if len(parts) == 3 {
		res.Reason = string(parts[2])
	}

	return nil
}

func (d *Decoder) decodeHeaders(headers *header.Map) error {
	for {
		line, err := readLine(d.br, d.opts.MaxLineLength)
		if err != nil {
			if errors.Is(err, errMissingCR) || errors.Is(err, errLineTooLong) {
				return ErrMalformedHeaderLine
			}
			return errors.Wrap(err, "reading line")
		}

		if len(line) == 0 {
			// End of the header block.
			return nil
		}

		// Obsolete line folding is not supported.
		if rule.IsWhitespace(rune(line[0])) {
			return ErrMalformedHeaderLine
		}

		name, value, err := parseField(line)
		if err != nil {
			return ErrMalformedHeaderLine
		}

		if err := headers.Add(name, value); err != nil {
			return ErrMalformedHeaderLine
		}
	}
}

// parseField splits a raw field line into name and value.
// No whitespace is allowed between the field name and the colon.
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.1-2
func parseField(line []byte) (name, value string, err error) {
	rawName, rawValue, found := bytes.Cut(line, []byte{':'})
	if !found {
		return "", "", errors.Errorf("colon separator not found: %q", line)
	}

	for _, c := range rule.OWS {
		if bytes.HasSuffix(rawName, []byte{c}) {
			return "", "", errors.New("field name has trailing whitespace")
		}
	}

	rawValue = trimOWS(rawValue)

	return string(rawName), string(rawValue), nil
}

// decodeBody applies the framing rules of RFC 9112 section 6.3 and
// materializes the whole body before returning.
func (d *Decoder) decodeBody(res *message.Response) error {
	if d.forcedEmpty(res.Status) {
		res.Body = body.Empty()
		return nil
	}

	switch {
	case isChunked(res.Headers):
		data, err := readChunked(d.br, d.opts.MaxLineLength)
		if err != nil {
			return err
		}
		res.Body = body.FromBytes(data)

	case res.Headers.Has("Content-Length"):
		length, err := contentLength(res.Headers)
		if err != nil {
			return err
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(d.br, data); err != nil {
			return unexpectedEOF(err, "reading length-delimited body")
		}
		res.Body = body.FromBytes(data)

	default:
		// Close-delimited: the body ends when the peer closes the
		// connection. Valid only because connections are not reused.
		data, err := io.ReadAll(d.br)
		if err != nil {
			return errors.Wrap(err, "reading close-delimited body")
		}
		res.Body = body.FromBytes(data)
	}

	return nil
}

// forcedEmpty reports whether the response has no body by definition,
// regardless of any length headers.
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-6.3-2.1
func (d *Decoder) forcedEmpty(code status.Code) bool {
	if d.opts.HeadResponse {
		return true
	}
	return code.Class() == status.ClassInformational ||
		code == status.NoContent ||
		code == status.NotModified
}

// isChunked reports whether a Transfer-Encoding header names chunked.
// Chunked takes priority over Content-Length when both are present.
func isChunked(headers *header.Map) bool {
	for _, v := range headers.Values("Transfer-Encoding") {
		if strings.Contains(strings.ToLower(v), "chunked") {
			return true
		}
	}
	return false
}

// contentLength extracts the body length. Multiple Content-Length
// values must agree; a disagreement or a non-integer is invalid.
func contentLength(headers *header.Map) (uint64, error) {
	values := headers.Values("Content-Length")

	length := uint64(0)
	for i, v := range values {
		n, err := strconv.ParseUint(v, 10, 63)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidContentLength, "value: %q", v)
		}
		if i > 0 && n != length {
			return 0, errors.Wrapf(ErrInvalidContentLength, "conflicting values: %v", values)
		}
		length = n
	}

	return length, nil
}

func isDigits(b []byte) bool {
	for _, c := range b {
		if !rule.IsDigit(rune(c)) {
			return false
		}
	}
	return true
}
