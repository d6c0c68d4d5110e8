// Package status models HTTP response status codes.
package status

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidCode is returned when a status code falls outside [100, 599].
var ErrInvalidCode = errors.New("status code is out of range")

// Code is a response status code, always in range [100, 599].
type Code uint

// From validates raw and converts it into a Code.
func From(raw uint) (Code, error) {
	if raw < 100 || raw > 599 {
		return 0, errors.Wrapf(ErrInvalidCode, "code: %d", raw)
	}
	return Code(raw), nil
}

// Class is the response class carried by the first digit of a code.
type Class uint

const (
	ClassInformational Class = 1
	ClassSuccess       Class = 2
	ClassRedirect      Class = 3
	ClassClientError   Class = 4
	ClassServerError   Class = 5
)

func (c Code) Class() Class { return Class(c / 100) }

// ReasonPhrase returns the standard phrase for the code, or an empty
// string for codes without one.
func (c Code) ReasonPhrase() string { return reasonPhrases[c] }

func (c Code) String() string {
	s := strconv.FormatUint(uint64(c), 10)
	if phrase := c.ReasonPhrase(); phrase != "" {
		s += " " + phrase
	}
	return s
}
