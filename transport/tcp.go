package transport

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"requestgo/iolib"
)

// Options tunes the TCP dialer. The zero value means no timeouts and
// default socket behavior.
type Options struct {
	// ConnectTimeout bounds the dial step only.
	ConnectTimeout time.Duration
	// ReadTimeout bounds each read; it is re-armed per Read call so
	// it measures peer silence, not total response time.
	ReadTimeout time.Duration
	// NoDelay disables Nagle's algorithm on the opened socket.
	NoDelay bool
}

// TCP dials plain TCP connections. TLS is not layered in.
type TCP struct {
	opts  Options
	clock clock.Clock
}

var _ Dialer = (*TCP)(nil)

// NewTCP creates a dialer. A nil clk falls back to the wall clock.
func NewTCP(opts Options, clk clock.Clock) *TCP {
	if clk == nil {
		clk = clock.New()
	}
	return &TCP{opts: opts, clock: clk}
}

func (t *TCP) Dial(host string, port uint16) (Conn, error) {
	addr := net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))

	c, err := net.DialTimeout("tcp", addr, t.opts.ConnectTimeout)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.Wrapf(ErrTimeout, "dialing %s", addr)
		}
		return nil, errors.Wrapf(ErrConnect, "dialing %s: %s", addr, err)
	}

	if t.opts.NoDelay {
		if tc, ok := c.(*net.TCPConn); ok {
			if err := tc.SetNoDelay(true); err != nil {
				_ = c.Close()
				return nil, errors.Wrap(err, "setting TCP_NODELAY")
			}
		}
	}

	return &tcpConn{inner: c, opts: t.opts, clock: t.clock}, nil
}

// tcpConn wraps a socket with full-write semantics and timeout
// classification.
type tcpConn struct {
	inner net.Conn
	opts  Options
	clock clock.Clock
}

var _ Conn = (*tcpConn)(nil)

// Read arms the read deadline when configured and maps its expiry to
// ErrTimeout. io.EOF passes through untouched: a close-delimited body
// depends on observing it.
func (c *tcpConn) Read(p []byte) (int, error) {
	if c.opts.ReadTimeout > 0 {
		deadline := c.clock.Now().Add(c.opts.ReadTimeout)
		if err := c.inner.SetReadDeadline(deadline); err != nil {
			return 0, errors.Wrap(err, "setting read deadline")
		}
	}

	n, err := c.inner.Read(p)
	if err != nil && isTimeout(err) {
		return n, errors.Wrap(ErrTimeout, "reading")
	}
	return n, err
}

// Write retries partial writes until the buffer is fully sent; a
// partial write with an error leaves the connection unusable and the
// caller must abort the exchange.
func (c *tcpConn) Write(p []byte) (int, error) {
	n, err := iolib.WriteFull(c.inner, p)
	if err != nil {
		if isTimeout(err) {
			return int(n), errors.Wrap(ErrTimeout, "writing")
		}
		return int(n), errors.Wrap(ErrConnClosed, err.Error())
	}
	return int(n), nil
}

func (c *tcpConn) Close() error { return c.inner.Close() }

func (c *tcpConn) SetReadDeadline(t time.Time) error {
	return c.inner.SetReadDeadline(t)
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
