// Package rq provides basic implementations of [takehttp.Request].
package rq

import (
	"io"
	"slices"
	"strings"

	"github.com/takehttp/takehttp"
)

// New returns an immutable [takehttp.Request] with the given head
// lines and body. The head slice is copied; mutating it after New has
// returned does not affect the resulting request.
func New(head []string, body string) takehttp.Request {
	return &request{
		head: slices.Clone(head),
		body: body,
	}
}

// Fake returns an in-memory request suitable for tests: a GET request
// line followed by the given raw header lines, with an empty body.
func Fake(headers ...string) takehttp.Request {
	head := make([]string, 0, len(headers)+1)
	head = append(head, "GET / HTTP/1.1")
	head = append(head, headers...)
	return &request{head: head}
}

type request struct {
	head []string
	body string
}

func (req *request) Head() []string {
	// Defensive copying: clients are free to retain or mutate the result.
	return slices.Clone(req.head)
}

func (req *request) Body() io.Reader {
	// A fresh reader per call keeps the request re-readable.
	return strings.NewReader(req.body)
}
