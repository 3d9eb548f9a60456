package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows attempts below the limit", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 3})
		defer rl.Stop()

		for i := 0; i < 2; i++ {
			allowed, _ := rl.Allow("1.2.3.4", "alice")
			assert.True(t, allowed)
			rl.RecordFailure("1.2.3.4", "alice")
		}

		allowed, _ := rl.Allow("1.2.3.4", "alice")
		assert.True(t, allowed)
	})

	t.Run("locks out after max failures", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 3, LockoutDuration: time.Hour})
		defer rl.Stop()

		for i := 0; i < 3; i++ {
			rl.RecordFailure("1.2.3.4", "alice")
		}

		allowed, retryAfter := rl.Allow("1.2.3.4", "alice")
		assert.False(t, allowed)
		assert.Greater(t, retryAfter, time.Duration(0))
	})

	t.Run("success clears failure history", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 3})
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")
		rl.RecordFailure("1.2.3.4", "alice")
		rl.RecordSuccess("1.2.3.4", "alice")

		for i := 0; i < 2; i++ {
			allowed, _ := rl.Allow("1.2.3.4", "alice")
			assert.True(t, allowed)
			rl.RecordFailure("1.2.3.4", "alice")
		}
	})

	t.Run("pairs are tracked independently", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 2, LockoutDuration: time.Hour})
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")
		rl.RecordFailure("1.2.3.4", "alice")

		allowed, _ := rl.Allow("1.2.3.4", "alice")
		assert.False(t, allowed)

		allowed, _ = rl.Allow("1.2.3.4", "bob")
		assert.True(t, allowed)

		allowed, _ = rl.Allow("5.6.7.8", "alice")
		assert.True(t, allowed)
	})

	t.Run("window expiry forgets old failures", func(t *testing.T) {
		rl := NewRateLimiter(RateLimitConfig{
			MaxAttempts:    2,
			WindowDuration: 10 * time.Millisecond,
		})
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")
		time.Sleep(20 * time.Millisecond)

		rl.RecordFailure("1.2.3.4", "alice")
		allowed, _ := rl.Allow("1.2.3.4", "alice")
		assert.True(t, allowed)
	})
}

func TestSanitizeRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty defaults to books", "", "/books"},
		{"local path kept", "/wishlist", "/wishlist"},
		{"relative path rejected", "wishlist", "/books"},
		{"absolute url rejected", "https://evil.com/books", "/books"},
		{"protocol relative rejected", "//evil.com", "/books"},
		{"backslash rejected", "/\\evil.com", "/books"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeRedirectPath(tc.in))
		})
	}
}
