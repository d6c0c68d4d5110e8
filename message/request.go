// Package message holds the request and response models exchanged
// with the wire codec.
package message

import (
	"github.com/pkg/errors"

	"requestgo/body"
	"requestgo/header"
	"requestgo/uri"
)

var (
	ErrMissingMethod = errors.New("request method is not set")
	ErrMissingTarget = errors.New("request target is not set")
	ErrInvalidMethod = errors.New("request method is not recognized")
)

// Request is a fully built request. It is immutable from the
// builder's point of view and consumed exactly once by the codec:
// the body may be a single-pass source.
type Request struct {
	Method  Method
	URI     uri.URI
	Version Version
	Headers *header.Map
	Body    body.Body
}

// Builder accumulates request fields and validates them only at
// finalization. A half-built request never escapes as a Request.
type Builder struct {
	method  Method
	target  string
	version Version
	headers *header.Map

	hasMethod bool
	hasTarget bool

	err error
}

func NewBuilder() *Builder {
	return &Builder{version: V11, headers: &header.Map{}}
}

func (b *Builder) Method(m Method) *Builder {
	b.method = m
	b.hasMethod = true
	return b
}

// Target sets the absolute request URI. Parsing is deferred to
// finalization.
func (b *Builder) Target(raw string) *Builder {
	b.target = raw
	b.hasTarget = true
	return b
}

func (b *Builder) Version(v Version) *Builder {
	b.version = v
	return b
}

// Header appends a value for name. The first invalid header latches
// an error that surfaces at finalization.
func (b *Builder) Header(name, value string) *Builder {
	if b.err == nil {
		b.err = b.headers.Add(name, value)
	}
	return b
}

// SetHeader replaces every value for name.
func (b *Builder) SetHeader(name, value string) *Builder {
	if b.err == nil {
		b.err = b.headers.Set(name, value)
	}
	return b
}

// Body finalizes the builder. It fails if a header was invalid,
// method or target was never set, the method is not recognized, or
// the target fails URI parsing.
func (b *Builder) Body(bd body.Body) (*Request, error) {
	if b.err != nil {
		return nil, errors.Wrap(b.err, "building headers")
	}
	if !b.hasMethod {
		return nil, ErrMissingMethod
	}
	if !b.hasTarget {
		return nil, ErrMissingTarget
	}
	if !b.method.IsValid() {
		return nil, errors.Wrapf(ErrInvalidMethod, "method: %q", b.method)
	}

	u, err := uri.Parse(b.target)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing target %q", b.target)
	}

	return &Request{
		Method:  b.method,
		URI:     u,
		Version: b.version,
		Headers: b.headers,
		Body:    bd,
	}, nil
}
