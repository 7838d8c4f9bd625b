// Package security derives and hashes respondent network identifiers.
package security

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// UnknownIP is recorded when no client address can be determined
const UnknownIP = "unknown"

// ClientIP returns the caller address, preferring proxy headers in the order
// X-Forwarded-For (first hop), X-Real-IP, CF-Connecting-IP, then remote.
func ClientIP(header func(key string) string, remote string) string {
	if forwarded := header("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	for _, key := range []string{"X-Real-IP", "CF-Connecting-IP"} {
		if ip := strings.TrimSpace(header(key)); ip != "" {
			return ip
		}
	}
	if remote = strings.TrimSpace(remote); remote != "" {
		return remote
	}
	return UnknownIP
}

// IPHasher one-way hashes addresses so responses never store them in clear
type IPHasher struct {
	cost int
}

func NewIPHasher(cost int) *IPHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &IPHasher{cost: cost}
}

func (h *IPHasher) Hash(ip string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(ip), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash ip: %w", err)
	}
	return string(hash), nil
}

// Matches reports whether hash was produced from ip
func (h *IPHasher) Matches(hash, ip string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(ip)) == nil
}
