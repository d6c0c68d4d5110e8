// Package rule holds the low-level character rules of HTTP field syntax.
package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	NUL  byte = 0x00
)

var (
	CRLF = []byte{CR, LF}
	OWS  = []byte{SP, HTAB}
)

func IsWhitespace(r rune) bool { return r == rune(SP) || r == rune(HTAB) }

func IsAlpha(r rune) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }
