package cors

import (
	"github.com/takehttp/takehttp/internal/origins"
	"github.com/takehttp/takehttp/internal/util"
)

// A Policy is an immutable set of origins authorized for cross-origin
// access.
//
// A Policy whose allow-set is empty allows every origin; this wildcard
// behavior is deliberate and distinct from allowing none. The zero
// value is such an allow-all policy.
//
// Policies are plain values; once constructed, they are safe for
// concurrent use by multiple goroutines.
type Policy struct {
	allowed util.Set
}

// NewPolicy returns a Policy whose allow-set contains exactly the
// given origins. No syntactic validation is performed on them;
// see [NewPolicyStrict]. An empty origins list yields an allow-all
// policy.
func NewPolicy(allowed ...string) Policy {
	return Policy{allowed: util.NewSet(allowed...)}
}

// NewPolicyStrict is like [NewPolicy], but it additionally requires
// every element of allowed to be a valid Web origin in ASCII
// serialized form (e.g. "https://example.com",
// "http://localhost:9090"). If any element fails that requirement,
// NewPolicyStrict returns a zero Policy and some non-nil error.
//
// An empty allowed list is valid and yields an allow-all policy,
// not an error.
func NewPolicyStrict(allowed ...string) (Policy, error) {
	for _, o := range allowed {
		if err := origins.Validate(o); err != nil {
			return Policy{}, err
		}
	}
	return NewPolicy(allowed...), nil
}

// Allows reports whether origin is authorized under p:
// true if p's allow-set is empty, or if origin is a member of it.
// Membership is decided by exact string comparison.
func (p Policy) Allows(origin string) bool {
	return p.allowed.Size() == 0 || p.allowed.Contains(origin)
}

// AllowsAll reports whether p allows every origin,
// i.e. whether its allow-set is empty.
func (p Policy) AllowsAll() bool {
	return p.allowed.Size() == 0
}

// Origins returns the origins in p's allow-set, sorted in
// lexicographical order. Mutating the result does not alter p.
func (p Policy) Origins() []string {
	return p.allowed.ToSlice()
}
