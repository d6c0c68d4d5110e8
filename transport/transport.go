// Package transport opens and owns the blocking byte-stream
// connections requests travel over. One connection carries exactly
// one request/response exchange and is closed afterwards.
package transport

import (
	"io"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrConnect covers refusal, unreachability and DNS failure.
	ErrConnect = errors.New("connection could not be established")
	// ErrConnClosed is surfaced when the peer closes mid-exchange.
	ErrConnClosed = errors.New("connection is closed")
	// ErrTimeout is surfaced when a configured deadline expires.
	ErrTimeout = errors.New("operation timed out")
)

// Conn is a blocking byte-stream connection.
type Conn interface {
	io.ReadWriteCloser

	SetReadDeadline(t time.Time) error
}

// Dialer opens connections to host:port endpoints.
type Dialer interface {
	Dial(host string, port uint16) (Conn, error)
}
