package headers_test

import (
	"slices"
	"testing"

	"github.com/takehttp/takehttp/internal/headers"
)

func TestNewIndex(t *testing.T) {
	cases := []struct {
		desc string
		head []string
		want headers.Index
	}{
		{
			desc: "empty head",
			head: nil,
			want: headers.Index{},
		}, {
			desc: "request line skipped",
			head: []string{"GET /f?a=3&b-6"},
			want: headers.Index{},
		}, {
			desc: "names lowercased",
			head: []string{
				"GET /f?a=3&b-6",
				"Host: example.com",
				"Accept: text/xml",
				"Accept: text/html",
			},
			want: headers.Index{
				"host":   {"example.com"},
				"accept": {"text/xml", "text/html"},
			},
		}, {
			desc: "leading whitespace trimmed from values",
			head: []string{"Content-Type: \t  text/plain"},
			want: headers.Index{
				"content-type": {"text/plain"},
			},
		}, {
			desc: "trailing whitespace retained in values",
			head: []string{"Content-Type: text/plain  "},
			want: headers.Index{
				"content-type": {"text/plain  "},
			},
		}, {
			desc: "empty value retained",
			head: []string{"X-Empty:"},
			want: headers.Index{
				"x-empty": {""},
			},
		}, {
			desc: "invalid header name skipped",
			head: []string{
				"not a header: whatever",
				"Host: example.com",
			},
			want: headers.Index{
				"host": {"example.com"},
			},
		}, {
			desc: "duplicate values retained in order",
			head: []string{
				"Accept: text/html",
				"Accept: text/html",
			},
			want: headers.Index{
				"accept": {"text/html", "text/html"},
			},
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			got := headers.NewIndex(tc.head)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v; want %v", got, tc.want)
			}
			for name, want := range tc.want {
				if !slices.Equal(got[name], want) {
					t.Errorf("values for %q: got %v; want %v", name, got[name], want)
				}
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestIndexLookup(t *testing.T) {
	index := headers.NewIndex([]string{
		"GET /f?a=3&b-6",
		"Host: example.com",
		"Accept: text/xml",
		"Accept: text/html",
	})
	cases := []struct {
		desc  string
		name  string
		value string
		want  bool
	}{
		{
			desc:  "lowercase lookup of canonical name",
			name:  "accept",
			value: "text/xml",
			want:  true,
		}, {
			desc:  "canonical lookup",
			name:  "Accept",
			value: "text/html",
			want:  true,
		}, {
			desc:  "mixed-case lookup",
			name:  "hOsT",
			value: "example.com",
			want:  true,
		}, {
			desc:  "present name, absent value",
			name:  "host",
			value: "fake.org",
			want:  false,
		}, {
			desc:  "absent name",
			name:  "content-type",
			value: "text/xml",
			want:  false,
		}, {
			desc:  "value comparison is case-sensitive",
			name:  "accept",
			value: "TEXT/XML",
			want:  false,
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			if got := index.HasEntry(tc.name, tc.value); got != tc.want {
				t.Errorf("HasEntry(%q, %q): got %t; want %t", tc.name, tc.value, got, tc.want)
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestIndexValues(t *testing.T) {
	index := headers.NewIndex([]string{
		"Accept: text/xml",
		"accept: text/html",
	})
	want := []string{"text/xml", "text/html"}
	if got := index.Values("ACCEPT"); !slices.Equal(got, want) {
		t.Errorf(`Values("ACCEPT"): got %v; want %v`, got, want)
	}
	if got := index.Values("authorization"); got != nil {
		t.Errorf(`Values("authorization"): got %v; want nil`, got)
	}
}
