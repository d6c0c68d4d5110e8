package client

import "requestgo/transport"

// Options tunes a Client. The zero value is usable: no timeouts,
// default User-Agent.
type Options struct {
	Transport transport.Options

	// UserAgent is sent when the caller supplied none.
	UserAgent string

	// MaxLineLength bounds status and header lines while decoding.
	// Zero selects the decoder default.
	MaxLineLength uint
}

const defaultUserAgent = "requestgo"

func (o Options) userAgent() string {
	if o.UserAgent != "" {
		return o.UserAgent
	}
	return defaultUserAgent
}
