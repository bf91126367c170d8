package headers

import (
	"golang.org/x/net/http/httpguts"
)

// header names in canonical format
const (
	// request headers
	Origin = "Origin"

	// response headers
	ACAO = "Access-Control-Allow-Origin"
	ACAC = "Access-Control-Allow-Credentials"
	ACAM = "Access-Control-Allow-Methods"
)

const (
	ValueTrue  = "true"
	ValueFalse = "false"
)

// NameValueSep separates a header's name from its value in a raw
// header line.
const NameValueSep = ":"

// IsValidName reports whether name is a valid header name,
// [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#header-name
func IsValidName(name string) bool {
	return httpguts.ValidHeaderFieldName(name)
}
