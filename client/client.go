// Package client composes the request model, wire codec and
// transport into one-call HTTP operations.
package client

import (
	"io"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"requestgo/body"
	"requestgo/header"
	"requestgo/message"
	"requestgo/transport"
	"requestgo/wire"
)

// Client performs synchronous request/response exchanges. Every call
// dials its own connection and closes it on every exit path; there is
// no pooling or keep-alive.
type Client struct {
	dialer transport.Dialer
	logger *slog.Logger
	clock  clock.Clock

	opts Options
}

// New creates a Client dialing plain TCP.
func New(opts Options) *Client {
	return NewWith(transport.NewTCP(opts.Transport, nil), nil, nil, opts)
}

// NewWith creates a Client with injected collaborators. A nil logger
// discards, a nil clk falls back to the wall clock.
func NewWith(d transport.Dialer, logger *slog.Logger, clk clock.Clock, opts Options) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Client{dialer: d, logger: logger, clock: clk, opts: opts}
}

// Do sends a built request and decodes the response. The request is
// consumed: its body may be a single-pass source. Default User-Agent
// and Connection headers are filled in when absent.
func (c *Client) Do(req *message.Request) (*message.Response, error) {
	if err := c.fillDefaultHeaders(req); err != nil {
		return nil, errors.Wrap(err, "filling default headers")
	}

	host, port := req.URI.HostPort()

	start := c.clock.Now()

	conn, err := c.dialer.Dial(host, port)
	if err != nil {
		return nil, errors.Wrap(err, "connecting")
	}
	defer conn.Close()

	if err := wire.NewEncoder(conn).Encode(req); err != nil {
		return nil, errors.Wrap(err, "sending request")
	}

	dec := wire.NewDecoder(conn, wire.DecodeOptions{
		HeadResponse:  req.Method == message.MethodHead,
		MaxLineLength: c.opts.MaxLineLength,
	})

	res, err := dec.Decode()
	if err != nil {
		return nil, errors.Wrap(err, "receiving response")
	}

	c.logger.Debug("exchange finished",
		slog.String("method", string(req.Method)),
		slog.String("target", req.URI.String()),
		slog.Uint64("status", uint64(res.Status)),
		slog.Duration("elapsed", c.clock.Since(start)),
	)

	return res, nil
}

// Request builds and sends a request in one call. Build failures
// surface before any I/O is attempted.
func (c *Client) Request(
	method message.Method, url string, headers *header.Map, b body.Body,
) (*message.Response, error) {
	builder := message.NewBuilder().Method(method).Target(url)

	if headers != nil {
		for _, e := range headers.Entries() {
			builder.Header(e.Name, e.Value)
		}
	}

	req, err := builder.Body(b)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	return c.Do(req)
}

func (c *Client) Get(url string) (*message.Response, error) {
	return c.Request(message.MethodGet, url, nil, body.Empty())
}

func (c *Client) Head(url string) (*message.Response, error) {
	return c.Request(message.MethodHead, url, nil, body.Empty())
}

func (c *Client) Post(url string, b body.Body) (*message.Response, error) {
	return c.Request(message.MethodPost, url, nil, b)
}

func (c *Client) Put(url string, b body.Body) (*message.Response, error) {
	return c.Request(message.MethodPut, url, nil, b)
}

func (c *Client) Patch(url string, b body.Body) (*message.Response, error) {
	return c.Request(message.MethodPatch, url, nil, b)
}

func (c *Client) Delete(url string) (*message.Response, error) {
	return c.Request(message.MethodDelete, url, nil, body.Empty())
}

func (c *Client) Options(url string) (*message.Response, error) {
	return c.Request(message.MethodOptions, url, nil, body.Empty())
}

func (c *Client) Trace(url string) (*message.Response, error) {
	return c.Request(message.MethodTrace, url, nil, body.Empty())
}

func (c *Client) fillDefaultHeaders(req *message.Request) error {
	if !req.Headers.Has("User-Agent") {
		if err := req.Headers.Set("User-Agent", c.opts.userAgent()); err != nil {
			return err
		}
	}

	// Connections are never reused, so say so on the wire. This also
	// keeps close-delimited response bodies honest.
	if !req.Headers.Has("Connection") {
		if err := req.Headers.Set("Connection", "close"); err != nil {
			return err
		}
	}

	return nil
}
