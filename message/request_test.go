package message

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"requestgo/body"
	"requestgo/header"
	"requestgo/uri"
)

type BuilderTestSuite struct {
	suite.Suite
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) TestBuild() {
	req, err := NewBuilder().
		Method(MethodPost).
		Target("http://example.com:8080/submit?draft=1").
		Header("Accept", "text/html").
		Header("Accept", "application/json").
		Body(body.FromString("payload"))
	s.Require().NoError(err)

	s.Equal(MethodPost, req.Method)
	s.Equal(V11, req.Version)
	s.Equal("example.com", req.URI.Host)
	s.Equal("/submit?draft=1", req.URI.RequestTarget())
	s.Equal([]string{"text/html", "application/json"}, req.Headers.Values("Accept"))

	n, ok := req.Body.KnownLength()
	s.True(ok)
	s.Equal(uint64(7), n)
}

func (s *BuilderTestSuite) TestVersionOverride() {
	req, err := NewBuilder().
		Method(MethodGet).
		Target("http://example.com/").
		Version(V10).
		Body(body.Empty())
	s.Require().NoError(err)

	s.Equal(V10, req.Version)
}

func (s *BuilderTestSuite) TestFailsAtFinalization() {
	testcases := []struct {
		desc    string
		build   func() (*Request, error)
		wantErr error
	}{
		{
			desc: "missing method",
			build: func() (*Request, error) {
				return NewBuilder().Target("http://example.com/").Body(body.Empty())
			},
			wantErr: ErrMissingMethod,
		},
		{
			desc: "missing target",
			build: func() (*Request, error) {
				return NewBuilder().Method(MethodGet).Body(body.Empty())
			},
			wantErr: ErrMissingTarget,
		},
		{
			desc: "unknown method",
			build: func() (*Request, error) {
				return NewBuilder().
					Method(Method("FETCH")).
					Target("http://example.com/").
					Body(body.Empty())
			},
			wantErr: ErrInvalidMethod,
		},
		{
			desc: "malformed target",
			build: func() (*Request, error) {
				return NewBuilder().
					Method(MethodGet).
					Target("not a uri").
					Body(body.Empty())
			},
			wantErr: uri.ErrInvalidURI,
		},
		{
			desc: "invalid header latches",
			build: func() (*Request, error) {
				return NewBuilder().
					Method(MethodGet).
					Target("http://example.com/").
					Header("bad name", "v").
					Body(body.Empty())
			},
			wantErr: header.ErrInvalidName,
		},
	}
	for _, tc := range testcases {
		s.Run(tc.desc, func() {
			req, err := tc.build()
			s.Nil(req)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *BuilderTestSuite) TestSetHeaderReplaces() {
	req, err := NewBuilder().
		Method(MethodGet).
		Target("http://example.com/").
		Header("Accept", "text/html").
		SetHeader("Accept", "*/*").
		Body(body.Empty())
	s.Require().NoError(err)

	s.Equal([]string{"*/*"}, req.Headers.Values("Accept"))
}
