// Package rs provides immutable implementations of
// [takehttp.Response], built by composition: each decorator returns a
// new response layered over an existing one, never mutating it. The
// original remains valid and unchanged for any other holder.
package rs

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/takehttp/takehttp"
)

// Empty returns a response with status 200, no headers and no body.
func Empty() takehttp.Response {
	return empty{}
}

// Status returns a response with the given status code,
// no headers and no body.
func Status(code int) takehttp.Response {
	return WithStatus(Empty(), code)
}

// WithStatus returns a response identical to res except that its
// status line carries the given status code. res itself is not
// modified.
func WithStatus(res takehttp.Response, code int) takehttp.Response {
	return &withStatus{
		inner: res,
		line:  statusLine(code),
	}
}

// WithHeaders returns a response identical to res except that the
// given raw header lines are appended to its head. res itself is not
// modified. No deduplication is performed: lines already present in
// res's head are retained alongside the new ones.
func WithHeaders(res takehttp.Response, lines ...string) takehttp.Response {
	return &withHeaders{
		inner: res,
		lines: lines,
	}
}

// WithHeader is shorthand for WithHeaders(res, name+": "+value).
func WithHeader(res takehttp.Response, name, value string) takehttp.Response {
	return WithHeaders(res, name+": "+value)
}

// WithBody returns a response identical to res except that its body
// is the given string. res itself is not modified.
func WithBody(res takehttp.Response, body string) takehttp.Response {
	return &withBody{
		inner: res,
		body:  body,
	}
}

// StatusCode returns the status code carried by res's status line,
// or 0 if the status line is malformed.
func StatusCode(res takehttp.Response) int {
	head := res.Head()
	if len(head) == 0 {
		return 0
	}
	parts := strings.SplitN(head[0], " ", 3)
	if len(parts) < 2 {
		return 0
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return code
}

func statusLine(code int) string {
	return fmt.Sprintf("HTTP/1.1 %d %s", code, http.StatusText(code))
}

type empty struct{}

func (empty) Head() []string {
	return []string{statusLine(http.StatusOK)}
}

func (empty) Body() io.Reader {
	return strings.NewReader("")
}

type withStatus struct {
	inner takehttp.Response
	line  string
}

func (res *withStatus) Head() []string {
	head := res.inner.Head()
	if len(head) == 0 {
		return []string{res.line}
	}
	// head is a fresh copy (see takehttp.Response); overwriting its
	// first element leaves the inner response untouched.
	head[0] = res.line
	return head
}

func (res *withStatus) Body() io.Reader {
	return res.inner.Body()
}

type withHeaders struct {
	inner takehttp.Response
	lines []string
}

func (res *withHeaders) Head() []string {
	return append(res.inner.Head(), res.lines...)
}

func (res *withHeaders) Body() io.Reader {
	return res.inner.Body()
}

type withBody struct {
	inner takehttp.Response
	body  string
}

func (res *withBody) Head() []string {
	return res.inner.Head()
}

func (res *withBody) Body() io.Reader {
	return strings.NewReader(res.body)
}
