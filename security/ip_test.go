package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func headers(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "forwarded for first hop",
			headers:  map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1", "X-Real-IP": "198.51.100.2"},
			remote:   "127.0.0.1",
			expected: "203.0.113.7",
		},
		{
			name:     "real ip",
			headers:  map[string]string{"X-Real-IP": "198.51.100.2", "CF-Connecting-IP": "192.0.2.9"},
			remote:   "127.0.0.1",
			expected: "198.51.100.2",
		},
		{
			name:     "cloudflare",
			headers:  map[string]string{"CF-Connecting-IP": "192.0.2.9"},
			remote:   "127.0.0.1",
			expected: "192.0.2.9",
		},
		{
			name:     "remote address",
			headers:  map[string]string{"X-Forwarded-For": " , "},
			remote:   "127.0.0.1",
			expected: "127.0.0.1",
		},
		{
			name:     "unknown",
			headers:  map[string]string{},
			expected: UnknownIP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClientIP(headers(tt.headers), tt.remote))
		})
	}
}

func TestIPHasher(t *testing.T) {
	h := NewIPHasher(bcrypt.MinCost)

	hash, err := h.Hash("203.0.113.7")
	require.NoError(t, err)
	assert.NotContains(t, hash, "203.0.113.7")
	assert.True(t, h.Matches(hash, "203.0.113.7"))
	assert.False(t, h.Matches(hash, "203.0.113.8"))

	again, err := h.Hash("203.0.113.7")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestNewIPHasher_InvalidCostUsesDefault(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewIPHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewIPHasher(99).cost)
	assert.Equal(t, 12, NewIPHasher(12).cost)
}
