package transport

import (
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type TCPTestSuite struct {
	suite.Suite
}

func TestTCPTestSuite(t *testing.T) {
	suite.Run(t, new(TCPTestSuite))
}

// listen opens a loopback listener and returns its port.
func (s *TCPTestSuite) listen() (net.Listener, uint16) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	return ln, uint16(ln.Addr().(*net.TCPAddr).Port)
}

func (s *TCPTestSuite) TestDialAndExchange() {
	ln, port := s.listen()
	defer ln.Close()

	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()

		sc, err := ln.Accept()
		s.Require().NoError(err)
		defer sc.Close()

		buf := make([]byte, 4)
		_, err = io.ReadFull(sc, buf)
		s.Require().NoError(err)
		s.Equal("ping", string(buf))

		_, err = sc.Write([]byte("pong"))
		s.Require().NoError(err)
	}()

	conn, err := NewTCP(Options{NoDelay: true}, nil).Dial("127.0.0.1", port)
	s.Require().NoError(err)
	defer conn.Close()

	n, err := conn.Write([]byte("ping"))
	s.Require().NoError(err)
	s.Equal(4, n)

	buf := make([]byte, 4)
	_, err = io.ReadFull(conn, buf)
	s.Require().NoError(err)
	s.Equal("pong", string(buf))
}

func (s *TCPTestSuite) TestDialRefused() {
	ln, port := s.listen()
	// Close immediately so the port refuses connections.
	s.Require().NoError(ln.Close())

	_, err := NewTCP(Options{}, nil).Dial("127.0.0.1", port)
	s.ErrorIs(err, ErrConnect)
}

func (s *TCPTestSuite) TestReadTimeout() {
	ln, port := s.listen()
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()

		sc, err := ln.Accept()
		s.Require().NoError(err)
		accepted <- sc
	}()

	dialer := NewTCP(Options{ReadTimeout: 20 * time.Millisecond}, nil)
	conn, err := dialer.Dial("127.0.0.1", port)
	s.Require().NoError(err)
	defer conn.Close()

	// The server stays silent; the read must expire.
	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	s.ErrorIs(err, ErrTimeout)

	sc := <-accepted
	s.NoError(sc.Close())
}

func (s *TCPTestSuite) TestReadPassesEOFThrough() {
	ln, port := s.listen()
	defer ln.Close()

	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()

		sc, err := ln.Accept()
		s.Require().NoError(err)
		// Close right away: the peer observes EOF, not an error.
		s.Require().NoError(sc.Close())
	}()

	conn, err := NewTCP(Options{}, nil).Dial("127.0.0.1", port)
	s.Require().NoError(err)
	defer conn.Close()

	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	s.ErrorIs(err, io.EOF)
}
