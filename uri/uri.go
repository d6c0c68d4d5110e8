// Package uri parses the absolute http URIs this client accepts as
// request targets.
package uri

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"requestgo/rule"
)

// ErrInvalidURI is returned when a request target cannot be parsed
// into scheme, host, port, path and query.
var ErrInvalidURI = errors.New("uri is invalid")

// DefaultPort is the port implied by the http scheme.
const DefaultPort uint16 = 80

// URI is a parsed absolute http URI.
// Manually created URIs should not contain escaped characters.
type URI struct {
	Scheme string
	Host   string
	Port   *uint16
	Path   string
	Query  *string
}

// Parse parses raw into a URI. Only the http scheme is accepted;
// https belongs to a secure transport this client does not carry.
func Parse(raw string) (URI, error) {
	scheme, rest, err := cutScheme(raw)
	if err != nil {
		return URI{}, errors.Wrap(ErrInvalidURI, err.Error())
	}

	if scheme != "http" {
		return URI{}, errors.Wrapf(ErrInvalidURI, "unsupported scheme: %q", scheme)
	}

	if !strings.HasPrefix(rest, "//") {
		return URI{}, errors.Wrap(ErrInvalidURI, "authority is missing")
	}
	rest = rest[2:]

	authority, rest := cutAuthority(rest)

	u := URI{Scheme: scheme}
	u.Host, u.Port, err = parseAuthority(authority)
	if err != nil {
		return URI{}, errors.Wrap(ErrInvalidURI, err.Error())
	}

	u.Path, u.Query = splitPathQuery(rest)

	return u, nil
}

// HostPort returns the connection endpoint, applying the default port
// when the URI carries none.
func (u *URI) HostPort() (string, uint16) {
	if u.Port != nil {
		return u.Host, *u.Port
	}
	return u.Host, DefaultPort
}

// RequestTarget returns the origin-form target for the request line.
// An empty path is serialized as "/".
func (u *URI) RequestTarget() string {
	target := u.Path
	if target == "" {
		target = "/"
	}
	if u.Query != nil {
		target += "?" + *u.Query
	}
	return target
}

// Authority returns the host[:port] form used for the Host header.
// The default port is omitted.
func (u *URI) Authority() string {
	if u.Port == nil || *u.Port == DefaultPort {
		return u.Host
	}
	return u.Host + ":" + strconv.FormatUint(uint64(*u.Port), 10)
}

func (u *URI) String() string {
	b := new(strings.Builder)
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Authority())
	b.WriteString(u.RequestTarget())
	return b.String()
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.1
func cutScheme(raw string) (scheme, rest string, err error) {
	idx := strings.Index(raw, ":")
	if idx <= 0 {
		return "", "", errors.New("scheme separator not found")
	}

	scheme = raw[:idx]
	for i, c := range scheme {
		if rule.IsAlpha(c) {
			continue
		}
		if i > 0 && (rule.IsDigit(c) || c == '+' || c == '-' || c == '.') {
			continue
		}
		return "", "", errors.Errorf("scheme is not valid: %q", scheme)
	}

	return strings.ToLower(scheme), raw[idx+1:], nil
}

func cutAuthority(rest string) (authority, remainder string) {
	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		return rest, ""
	}
	return rest[:end], rest[end:]
}

func parseAuthority(raw string) (host string, port *uint16, err error) {
	if at := strings.LastIndex(raw, "@"); at >= 0 {
		// Userinfo is not something this client makes use of.
		raw = raw[at+1:]
	}

	host = raw
	if idx := strings.LastIndex(raw, ":"); idx >= 0 && !strings.Contains(raw[idx:], "]") {
		host = raw[:idx]

		p, err := parsePort(raw[idx+1:])
		if err != nil {
			return "", nil, errors.Wrap(err, "parsing port")
		}
		port = &p
	}

	if host == "" {
		return "", nil, errors.New("host should not be empty")
	}

	return host, port, nil
}

// Port can be digits of any length per the RFC, but practically it is
// in range of 0 ~ 65535.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.3
func parsePort(s string) (uint16, error) {
	p64, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errors.Errorf("port is not valid: %q", s)
	}
	return uint16(p64), nil
}

func splitPathQuery(rest string) (path string, query *string) {
	// A fragment is dropped: it never goes on the wire.
	if idx := strings.Index(rest, "#"); idx >= 0 {
		rest = rest[:idx]
	}

	if idx := strings.Index(rest, "?"); idx >= 0 {
		q := rest[idx+1:]
		return rest[:idx], &q
	}

	return rest, nil
}
