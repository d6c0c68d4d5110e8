package rule

// IsValidToken reports whether s matches the token grammar used for
// header field names and method names.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.2-2
func IsValidToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if IsAlpha(c) || IsDigit(c) {
			continue
		}

		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+',
			'-', '.', '^', '_', '`', '|', '~':
			continue
		}

		return false
	}

	return true
}

// IsValidFieldValue reports whether s is usable as a header field value.
// Bare CR, LF and NUL are rejected as they would break message framing.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.5-5
func IsValidFieldValue(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case CR, LF, NUL:
			return false
		}
	}
	return true
}
