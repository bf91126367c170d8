// Package hm provides composable header matchers: predicates over a
// request's headers paired with human-readable descriptions, intended
// for verification code rather than for the request path.
//
// A matcher is a plain value built from the [Entry], [Not] and [AllOf]
// combinators; evaluating one builds a case-insensitive index of the
// request's header lines and applies the predicate to it. Matchers are
// side-effect free and safe for concurrent use.
package hm

import (
	"fmt"
	"strings"

	"github.com/takehttp/takehttp"
	"github.com/takehttp/takehttp/internal/headers"
	"github.com/takehttp/takehttp/internal/util"
)

// A Matcher is a predicate over a request's headers, paired with a
// description of what it expects.
type Matcher struct {
	desc  string
	match func(headers.Index) bool
}

// Entry returns a Matcher that matches a request whose headers include
// at least one occurrence of name (compared case-insensitively) with
// exactly the given value.
func Entry(name, value string) Matcher {
	return Matcher{
		desc: fmt.Sprintf("header %q with value %q", name, value),
		match: func(index headers.Index) bool {
			return index.HasEntry(name, value)
		},
	}
}

// Present returns a Matcher that matches a request whose headers
// include at least one occurrence of name (compared
// case-insensitively), regardless of its value.
func Present(name string) Matcher {
	return Matcher{
		desc: fmt.Sprintf("header %q", name),
		match: func(index headers.Index) bool {
			return len(index.Values(name)) > 0
		},
	}
}

// Not returns a Matcher that matches exactly the requests that m does
// not match.
func Not(m Matcher) Matcher {
	return Matcher{
		desc: "not " + m.desc,
		match: func(index headers.Index) bool {
			return !m.match(index)
		},
	}
}

// AllOf returns a Matcher that matches the requests that all of ms
// match. With no arguments, it matches every request.
func AllOf(ms ...Matcher) Matcher {
	descs := make([]string, len(ms))
	for i, m := range ms {
		descs[i] = m.desc
	}
	return Matcher{
		desc: "all of: " + strings.Join(descs, "; "),
		match: func(index headers.Index) bool {
			for _, m := range ms {
				if !m.match(index) {
					return false
				}
			}
			return true
		},
	}
}

// Matches reports whether req satisfies m.
func (m Matcher) Matches(req takehttp.Request) bool {
	return m.match(headers.NewIndex(req.Head()))
}

// Match evaluates m against req. On a match, it returns true and an
// empty string; on a mismatch, it returns false and a description of
// the discrepancy, suitable for test diagnostics.
func (m Matcher) Match(req takehttp.Request) (bool, string) {
	head := req.Head()
	if m.match(headers.NewIndex(head)) {
		return true, ""
	}
	var b strings.Builder
	b.WriteString("expected ")
	b.WriteString(m.desc)
	b.WriteString(", but head was ")
	util.Join(&b, head)
	return false, b.String()
}

// String returns a description of what m expects.
func (m Matcher) String() string {
	return m.desc
}
