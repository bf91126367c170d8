// Package cors decorates a [takehttp.Take] with [Cross-Origin Resource
// Sharing (CORS)] enforcement against an allow-list of origins.
//
// The filter implemented here handles "actual" (i.e. non-preflight)
// cross-origin requests only; it performs no preflight handling and
// emits no Vary header.
//
// [Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
package cors

import (
	"net/http"
	"strings"

	"github.com/takehttp/takehttp"
	"github.com/takehttp/takehttp/internal/headers"
	"github.com/takehttp/takehttp/rs"
)

// allowMethods is the fixed method list advertised on allowed
// cross-origin requests.
const allowMethods = "OPTIONS, GET, PUT, POST, DELETE, HEAD"

// A Filter is a [takehttp.Take] that enforces a CORS [Policy] on
// behalf of the take it wraps.
//
// For each request, exactly one of three things happens:
//
//   - the request carries no Origin header: the filter delegates to
//     the wrapped take and returns its response verbatim;
//   - the request's origin is allowed under the policy: the filter
//     delegates to the wrapped take and layers the CORS-allow headers
//     over its response, leaving status and body unchanged;
//   - the request's origin is denied: the wrapped take is not invoked
//     at all, and the filter responds 403 with
//     "Access-Control-Allow-Credentials: false".
//
// A Filter holds no per-request state and is safe for concurrent use
// by multiple goroutines.
type Filter struct {
	inner  takehttp.Take
	policy Policy
}

// NewFilter returns a Filter that wraps inner and allows exactly the
// given origins. An empty allowed list allows every origin.
func NewFilter(inner takehttp.Take, allowed ...string) *Filter {
	return NewFilterWithPolicy(inner, NewPolicy(allowed...))
}

// NewFilterWithPolicy returns a Filter that wraps inner and enforces
// policy.
func NewFilterWithPolicy(inner takehttp.Take, policy Policy) *Filter {
	return &Filter{
		inner:  inner,
		policy: policy,
	}
}

// Act implements [takehttp.Take].
//
// A failure of the wrapped take propagates to the caller unwrapped;
// the filter itself cannot fail.
//
// Act appends its CORS-allow headers without inspecting the wrapped
// take's response: stacking two filters that allow the same origin
// yields duplicate header lines rather than deduplicated ones.
func (f *Filter) Act(req takehttp.Request) (takehttp.Response, error) {
	origin, found := originOf(req)
	switch {
	case !found:
		// Not a CORS request (same-origin, or a non-browser client).
		return f.inner.Act(req)
	case f.policy.Allows(origin):
		res, err := f.inner.Act(req)
		if err != nil {
			return nil, err
		}
		return rs.WithHeaders(
			res,
			headers.ACAC+": "+headers.ValueTrue,
			headers.ACAM+": "+allowMethods,
			headers.ACAO+": "+origin,
		), nil
	default:
		return rs.WithHeaders(
			rs.Status(http.StatusForbidden),
			headers.ACAC+": "+headers.ValueFalse,
		), nil
	}
}

// originOf returns the value of the first Origin header line in req's
// head, with surrounding optional whitespace trimmed, and reports
// whether such a line was found. Later Origin lines, if any, are
// ignored.
//
// The prefix match is deliberately exact-case ("Origin:"), unlike the
// case-insensitive index that backs header matching elsewhere; a line
// such as "origin: http://foo.com" is not recognized here.
func originOf(req takehttp.Request) (string, bool) {
	const prefix = headers.Origin + headers.NameValueSep
	for _, line := range req.Head() {
		if value, found := strings.CutPrefix(line, prefix); found {
			return headers.TrimOWS(value), true
		}
	}
	return "", false
}
