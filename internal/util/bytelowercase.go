package util

// ByteLowercase returns a [byte-lowercase] version of s.
// If s contains no ASCII uppercase letters, ByteLowercase returns s
// itself, without allocating.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ByteLowercase(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if isUpper(s[i]) {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}
