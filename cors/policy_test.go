package cors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takehttp/takehttp/cors"
)

func TestPolicyAllows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		desc    string
		allowed []string
		origin  string
		want    bool
	}{
		{
			desc:    "empty allow-set allows anything",
			allowed: nil,
			origin:  "http://foo.com",
			want:    true,
		}, {
			desc:    "empty allow-set allows even the empty origin",
			allowed: nil,
			origin:  "",
			want:    true,
		}, {
			desc:    "member origin",
			allowed: []string{"http://foo.com", "http://bar.com"},
			origin:  "http://bar.com",
			want:    true,
		}, {
			desc:    "non-member origin",
			allowed: []string{"http://foo.com"},
			origin:  "http://bar.com",
			want:    false,
		}, {
			desc:    "matching is exact, not case-insensitive",
			allowed: []string{"http://foo.com"},
			origin:  "http://FOO.com",
			want:    false,
		}, {
			desc:    "matching is exact, no prefix semantics",
			allowed: []string{"http://foo.com"},
			origin:  "http://foo.com.evil.org",
			want:    false,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			p := cors.NewPolicy(tc.allowed...)
			assert.Equal(t, tc.want, p.Allows(tc.origin))
		})
	}
}

func TestPolicyZeroValue(t *testing.T) {
	t.Parallel()

	var p cors.Policy
	assert.True(t, p.AllowsAll())
	assert.True(t, p.Allows("http://anything.example"))
	assert.Empty(t, p.Origins())
}

func TestPolicyOrigins(t *testing.T) {
	t.Parallel()

	p := cors.NewPolicy("http://foo.com", "http://bar.com", "http://foo.com")
	assert.Equal(t, []string{"http://bar.com", "http://foo.com"}, p.Origins())
	assert.False(t, p.AllowsAll())

	// mutating the result must not alter the policy
	origins := p.Origins()
	origins[0] = "http://evil.org"
	assert.True(t, p.Allows("http://bar.com"))
	assert.False(t, p.Allows("http://evil.org"))
}

func TestNewPolicyStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid origins", func(t *testing.T) {
		t.Parallel()
		p, err := cors.NewPolicyStrict("https://example.com", "http://localhost:9090")
		require.NoError(t, err)
		assert.True(t, p.Allows("https://example.com"))
		assert.False(t, p.Allows("https://other.example"))
	})

	t.Run("empty list is allow-all, not an error", func(t *testing.T) {
		t.Parallel()
		p, err := cors.NewPolicyStrict()
		require.NoError(t, err)
		assert.True(t, p.AllowsAll())
	})

	t.Run("invalid origin", func(t *testing.T) {
		t.Parallel()
		_, err := cors.NewPolicyStrict("https://example.com", "not a url")
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid origin "not a url"`)
	})

	t.Run("origin with a path", func(t *testing.T) {
		t.Parallel()
		_, err := cors.NewPolicyStrict("https://example.com/index.html")
		require.Error(t, err)
	})
}
