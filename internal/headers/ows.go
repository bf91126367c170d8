package headers

// isOWS reports whether b is an [optional whitespace (OWS)] byte.
//
// [optional whitespace (OWS)]: https://httpwg.org/specs/rfc9110.html#whitespace
func isOWS(b byte) bool {
	return b == '\t' || b == ' '
}

// TrimOWS trims optional whitespace from the start and the end of s.
func TrimOWS(s string) string {
	return trimRightOWS(trimLeftOWS(s))
}

// TrimLeftOWS trims optional whitespace from the start of s.
func TrimLeftOWS(s string) string {
	return trimLeftOWS(s)
}

func trimLeftOWS(s string) string {
	for len(s) > 0 && isOWS(s[0]) {
		s = s[1:]
	}
	return s
}

func trimRightOWS(s string) string {
	for len(s) > 0 && isOWS(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}
