package wire

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"requestgo/message"
	"requestgo/rule"
)

// ErrAmbiguousBodyFraming is returned when a body of unknown length
// is sent under a version that does not permit chunked framing.
var ErrAmbiguousBodyFraming = errors.New("body length is unknown and chunked framing is not available")

// Encoder writes request messages onto a byte stream.
type Encoder struct {
	bw *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{bw: bufio.NewWriter(w)}
}

// Encode serializes req: request line, header block (with Host and
// body-framing headers synthesized when absent), blank line, body.
// The request's body is consumed.
func (e *Encoder) Encode(req *message.Request) error {
	if err := e.encodeRequestLine(req); err != nil {
		return errors.Wrap(err, "encoding request line")
	}

	chunked, err := e.encodeHeaders(req)
	if err != nil {
		return errors.Wrap(err, "encoding headers")
	}

	// Flush the head before streaming the body.
	if err := e.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing request head")
	}

	if err := e.encodeBody(req, chunked); err != nil {
		return errors.Wrap(err, "encoding body")
	}

	if err := e.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing request body")
	}

	return nil
}

func (e *Encoder) encodeRequestLine(req *message.Request) error {
	buf := bytes.NewBuffer(nil)

	buf.WriteString(string(req.Method))
	buf.WriteByte(rule.SP)
	buf.WriteString(req.URI.RequestTarget())
	buf.WriteByte(rule.SP)
	buf.Write(req.Version.Text())

	return writeLine(e.bw, buf.Bytes())
}

// encodeHeaders writes the header block and decides body framing.
// Every request carries exactly one effective Host: when the caller
// set none, it is synthesized from the target URI and emitted first.
func (e *Encoder) encodeHeaders(req *message.Request) (chunked bool, err error) {
	if !req.Headers.Has("Host") {
		if err := e.writeField("Host", req.URI.Authority()); err != nil {
			return false, err
		}
	}

	for _, entry := range req.Headers.Entries() {
		if err := e.writeField(entry.Name, entry.Value); err != nil {
			return false, err
		}
	}

	length, known := req.Body.KnownLength()
	switch {
	case req.Headers.Has("Transfer-Encoding"):
		// The caller opted into chunked framing explicitly.
		chunked = true

	case known:
		if !req.Headers.Has("Content-Length") {
			n := strconv.FormatUint(length, 10)
			if err := e.writeField("Content-Length", n); err != nil {
				return false, err
			}
		}

	case req.Version == message.V11:
		if err := e.writeField("Transfer-Encoding", "chunked"); err != nil {
			return false, err
		}
		chunked = true

	default:
		return false, ErrAmbiguousBodyFraming
	}

	// An empty line terminates the header block.
	return chunked, writeLine(e.bw, nil)
}

func (e *Encoder) writeField(name, value string) error {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	return writeLine(e.bw, buf.Bytes())
}

func (e *Encoder) encodeBody(req *message.Request, chunked bool) error {
	if !chunked {
		if _, err := req.Body.WriteTo(e.bw); err != nil {
			return err
		}
		return nil
	}

	cw := newChunkedWriter(e.bw)
	if _, err := req.Body.WriteTo(cw); err != nil {
		return err
	}

	return cw.Close()
}
