package body

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type BodyTestSuite struct {
	suite.Suite
}

func TestBodyTestSuite(t *testing.T) {
	suite.Run(t, new(BodyTestSuite))
}

func (s *BodyTestSuite) TestEmpty() {
	b := Empty()

	n, ok := b.KnownLength()
	s.True(ok)
	s.Equal(uint64(0), n)

	var buf bytes.Buffer
	written, err := b.WriteTo(&buf)
	s.NoError(err)
	s.Equal(int64(0), written)
	s.Equal(0, buf.Len())
}

func (s *BodyTestSuite) TestFromBytes() {
	data := []byte("username=admin&password=123")
	b := FromBytes(data)

	n, ok := b.KnownLength()
	s.True(ok)
	s.Equal(uint64(len(data)), n)

	var buf bytes.Buffer
	written, err := b.WriteTo(&buf)
	s.NoError(err)
	s.Equal(int64(len(data)), written)
	s.Equal(data, buf.Bytes())

	s.Equal(data, b.Bytes())
}

func (s *BodyTestSuite) TestFromString() {
	b := FromString("hello")

	n, ok := b.KnownLength()
	s.True(ok)
	s.Equal(uint64(5), n)
	s.Equal([]byte("hello"), b.Bytes())
}

func (s *BodyTestSuite) TestFromFile() {
	content := strings.Repeat("payload ", 1000)
	path := filepath.Join(s.T().TempDir(), "upload.txt")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	b, err := FromFile(path)
	s.Require().NoError(err)

	n, ok := b.KnownLength()
	s.True(ok)
	s.Equal(uint64(len(content)), n)

	var buf bytes.Buffer
	written, err := b.WriteTo(&buf)
	s.NoError(err)
	s.Equal(int64(len(content)), written)
	s.Equal(content, buf.String())
}

func (s *BodyTestSuite) TestFromFileMissing() {
	_, err := FromFile(filepath.Join(s.T().TempDir(), "nope.txt"))
	s.Error(err)
}

func (s *BodyTestSuite) TestFromFileDirectory() {
	_, err := FromFile(s.T().TempDir())
	s.Error(err)
}

func (s *BodyTestSuite) TestFromReader() {
	b := FromReader(strings.NewReader("streamed"))

	_, ok := b.KnownLength()
	s.False(ok)

	var buf bytes.Buffer
	written, err := b.WriteTo(&buf)
	s.NoError(err)
	s.Equal(int64(8), written)
	s.Equal("streamed", buf.String())
}
