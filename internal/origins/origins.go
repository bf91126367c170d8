// Package origins provides parsing and validation of [Web origins] in
// ASCII serialized form. It is exercised at policy-construction time
// only, never in the request path.
//
// [Web origins]: https://developer.mozilla.org/en-US/docs/Glossary/Origin
package origins

import (
	"net/netip"
	"strings"
	"sync"

	"golang.org/x/net/idna"

	"github.com/takehttp/takehttp/internal/util"
)

const (
	schemeHostSep = "://" // scheme-host separator
	hostPortSep   = ':'   // host-port separator
	labelSep      = '.'   // DNS-label separator
)

const (
	// maxHostLen is the maximum length of a host, which is dominated by
	// the maximum length of an (absolute) domain name (253);
	// see https://devblogs.microsoft.com/oldnewthing/20120412-00/?p=7873.
	maxHostLen = 253
	// maxSchemeLen is the maximum tolerated length for schemes.
	// Its value is somewhat arbitrary but chosen so as to cover the great
	// majority of commonly used schemes.
	maxSchemeLen = 64
	// maxPortLen is the maximum length of a port's decimal representation.
	maxPortLen = len("65535")
)

// An Origin represents a (tuple) Web origin.
type Origin struct {
	// Scheme is the origin's scheme.
	Scheme string
	// Host is the origin's raw host;
	// IPv6 hosts retain their square brackets.
	Host string
	// Port is the origin's port (if any).
	// The zero value marks the absence of an explicit port.
	Port int
}

var zeroOrigin Origin

// Parse parses str into an [Origin] structure.
// It is lenient insofar as it performs just enough validation for
// [Validate] to know what to do with the resulting Origin value;
// in particular, the scheme and port of the resulting origin are
// guaranteed to be well formed, but its host isn't.
func Parse(str string) (Origin, bool) {
	const maxOriginLen = maxSchemeLen + len(schemeHostSep) + maxHostLen + 1 + maxPortLen
	if len(str) > maxOriginLen {
		return zeroOrigin, false
	}
	scheme, rest, ok := parseScheme(str)
	if !ok {
		return zeroOrigin, false
	}
	rest, ok = strings.CutPrefix(rest, schemeHostSep)
	if !ok {
		return zeroOrigin, false
	}
	host, rest, ok := parseHost(rest)
	if !ok {
		return zeroOrigin, false
	}
	var port int // assume no explicit port at first
	if len(rest) > 0 {
		rest, ok = strings.CutPrefix(rest, string(hostPortSep))
		if !ok {
			return zeroOrigin, false
		}
		port, ok = parsePort(rest)
		if !ok {
			return zeroOrigin, false
		}
	}
	o := Origin{
		Scheme: scheme,
		Host:   host,
		Port:   port,
	}
	return o, true
}

// Validate checks that str is a valid Web origin in ASCII serialized
// form: a well-formed scheme, a host that is either an IP address or a
// domain name acceptable to IDNA lookup validation, and (optionally) a
// well-formed port.
func Validate(str string) error {
	o, ok := Parse(str)
	if !ok {
		return util.InvalidOriginErr(str)
	}
	if _, isIP := o.hostIP(); isIP {
		return nil
	}
	profileOnce.Do(initProfile)
	if _, err := profile.ToASCII(o.Host); err != nil {
		return util.InvalidOriginErr(str)
	}
	return nil
}

// hostIP returns the IP address denoted by o's host, if any.
// Bracketed hosts are interpreted as IPv6 addresses;
// dotted-quad hosts as IPv4 addresses.
func (o Origin) hostIP() (netip.Addr, bool) {
	host := o.Host
	if len(host) >= len("[::]") && host[0] == '[' && host[len(host)-1] == ']' {
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		return addr, err == nil && addr.Is6()
	}
	addr, err := netip.ParseAddr(host)
	return addr, err == nil && addr.Is4()
}

// parseScheme parses a URI scheme, per [RFC 3986, section 3.1].
// If successful, it returns the scheme and the unconsumed part of str.
//
// [RFC 3986, section 3.1]: https://www.rfc-editor.org/rfc/rfc3986.html#section-3.1
func parseScheme(str string) (scheme, rest string, ok bool) {
	if len(str) == 0 || !isLowerAlpha(str[0]) {
		return "", "", false
	}
	i := 1
	for end := min(maxSchemeLen, len(str)); i < end && isSubsequentSchemeByte(str[i]); i++ {
		// deliberately empty body
	}
	return str[:i], str[i:], true
}

// parseHost scans a raw host in str. It returns the scanned host and
// the unconsumed part of str. The resulting host is not guaranteed to
// be valid; however, it can neither be empty nor start with a
// DNS-label separator, and a host that opens a square bracket must
// close it.
func parseHost(str string) (host, rest string, ok bool) {
	if len(str) > 0 && str[0] == '[' { // looks like an IPv6 address
		end := strings.IndexByte(str, ']')
		if end == -1 { // unmatched left bracket
			return "", str, false
		}
		return str[:end+1], str[end+1:], true
	}
	if len(str) == 0 || str[0] == labelSep {
		return "", str, false
	}
	var i int
	for ; i < len(str) && isHostByte(str[i]); i++ {
		// deliberately empty body
	}
	if i == 0 {
		return "", str, false
	}
	return str[:i], str[i:], true
}

// isHostByte reports whether b may occur in a host in ASCII serialized
// form: an ASCII lowercase letter, a digit, a hyphen, an underscore,
// or a DNS-label separator.
func isHostByte(b byte) bool {
	return isLowerAlpha(b) || isDigit(b) || b == '-' || b == '_' || b == labelSep
}

// parsePort parses a port number ranging from 1 to 65,535 (inclusive),
// expressed in decimal without leading zeros, and consuming all of str.
func parsePort(str string) (int, bool) {
	if len(str) == 0 || len(str) > maxPortLen || str[0] == '0' {
		return 0, false
	}
	var port int
	for i := 0; i < len(str); i++ {
		if !isDigit(str[i]) {
			return 0, false
		}
		port = port*10 + int(str[i]-'0')
	}
	const maxUint16 = 1<<16 - 1
	if port > maxUint16 {
		return 0, false
	}
	return port, true
}

func isLowerAlpha(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSubsequentSchemeByte(b byte) bool {
	return isLowerAlpha(b) || isDigit(b) || b == '+' || b == '-' || b == '.'
}

var (
	profileOnce sync.Once     // guards init of profile via initProfile
	profile     *idna.Profile // lazily initialized
)

func initProfile() {
	profile = idna.New(
		idna.BidiRule(),
		idna.ValidateLabels(true),
		idna.StrictDomainName(true),
		idna.VerifyDNSLength(true),
	)
}
