package headers

import (
	"slices"
	"strings"

	"github.com/takehttp/takehttp/internal/util"
)

// An Index is a derived, case-insensitive view of a message head.
// Keys are byte-lowercased header names; the values recorded for a key
// appear in their order of arrival in the head, with every occurrence
// retained.
//
// An Index is built once per message and discarded after use; it holds
// no reference to the head it was built from.
type Index map[string][]string

// NewIndex builds an Index from raw head lines.
//
// Each line is split around its first colon; the part before the colon
// is the header's name, and the part after it, less any leading
// optional whitespace, is the header's value. Lines that contain no
// colon (such as the request line) and lines whose name is not a valid
// header-field name are skipped; no error is ever reported for them.
func NewIndex(head []string) Index {
	index := make(Index, len(head))
	for _, line := range head {
		name, value, found := strings.Cut(line, NameValueSep)
		if !found || !IsValidName(name) {
			continue
		}
		key := util.ByteLowercase(name)
		index[key] = append(index[key], TrimLeftOWS(value))
	}
	return index
}

// Values returns the values recorded for name, in order of arrival,
// or nil if the index records no such header. Lookup by name is
// case-insensitive; values are returned raw.
func (index Index) Values(name string) []string {
	return index[util.ByteLowercase(name)]
}

// HasEntry reports whether the index records at least one occurrence
// of a header named name (compared case-insensitively) whose value is
// exactly value.
func (index Index) HasEntry(name, value string) bool {
	return slices.Contains(index.Values(name), value)
}
