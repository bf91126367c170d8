package takehttp

import "io"

// A Request is an inbound HTTP message.
// Requests are immutable: none of the methods below may mutate the
// underlying message, and the slice returned by Head is free for the
// caller to retain or modify.
type Request interface {
	// Head returns the request's head lines in their original order.
	// The first line is the request line (e.g. "GET /path HTTP/1.1");
	// subsequent lines are raw header lines of the form "Name: value".
	Head() []string
	// Body returns a reader over the request's body.
	Body() io.Reader
}

// A Response is an outbound HTTP message.
// Like requests, responses are immutable; "modifying" a response
// (layering extra headers over it, substituting its status line)
// is done by wrapping it in a new Response value.
// Package [github.com/takehttp/takehttp/rs] provides such decorators.
type Response interface {
	// Head returns the response's head lines in order.
	// The first line is the status line (e.g. "HTTP/1.1 200 OK");
	// subsequent lines are raw header lines of the form "Name: value".
	// Implementations must return a slice that the caller is free to
	// retain or modify.
	Head() []string
	// Body returns a reader over the response's body.
	Body() io.Reader
}

// A Take converts a request into a response.
// A Take may fail, in which case it returns a nil Response and a
// non-nil error.
//
// Takes compose by decoration: a Take may wrap another Take and
// delegate to it, reshaping the request on the way in or the response
// on the way out. Takes that hold no mutable state are safe for
// concurrent use by multiple goroutines.
type Take interface {
	Act(Request) (Response, error)
}

// TakeFunc is an adapter that allows the use of an ordinary function
// as a [Take].
type TakeFunc func(Request) (Response, error)

// Act calls f(req).
func (f TakeFunc) Act(req Request) (Response, error) {
	return f(req)
}
