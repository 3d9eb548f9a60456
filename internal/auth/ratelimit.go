package auth

import (
	"sync"
	"time"
)

// RateLimiter throttles login attempts per IP+username combination using a
// sliding window, locking the pair out entirely after too many failures.
type RateLimiter struct {
	mu              sync.Mutex
	attempts        map[string]*attemptRecord
	maxAttempts     int
	windowDuration  time.Duration
	lockoutDuration time.Duration
	stopCleanup     chan struct{}
}

type attemptRecord struct {
	count        int
	firstAttempt time.Time
	lockedUntil  time.Time
}

// RateLimitConfig contains configuration for the rate limiter.
type RateLimitConfig struct {
	MaxAttempts     int           // Maximum attempts before lockout (default: 5)
	WindowDuration  time.Duration // Time window for counting attempts (default: 15m)
	LockoutDuration time.Duration // How long to lock out after max attempts (default: 30m)
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = 15 * time.Minute
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = 30 * time.Minute
	}

	rl := &RateLimiter{
		attempts:        make(map[string]*attemptRecord),
		maxAttempts:     cfg.MaxAttempts,
		windowDuration:  cfg.WindowDuration,
		lockoutDuration: cfg.LockoutDuration,
		stopCleanup:     make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop stops the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}

// Allow reports whether a login attempt should proceed. When it should not,
// retryAfter indicates how long until the lockout expires.
func (rl *RateLimiter) Allow(ip, username string) (allowed bool, retryAfter time.Duration) {
	key := ip + ":" + username
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	record, exists := rl.attempts[key]
	if !exists {
		return true, 0
	}

	if now.Before(record.lockedUntil) {
		return false, record.lockedUntil.Sub(now)
	}

	// Window expired: forget the old failures
	if now.Sub(record.firstAttempt) > rl.windowDuration {
		delete(rl.attempts, key)
		return true, 0
	}

	if record.count < rl.maxAttempts {
		return true, 0
	}

	return false, rl.lockoutDuration
}

// RecordFailure records a failed login attempt, starting a lockout once the
// attempt count within the window reaches the maximum.
func (rl *RateLimiter) RecordFailure(ip, username string) {
	key := ip + ":" + username
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	record, exists := rl.attempts[key]
	if !exists || now.Sub(record.firstAttempt) > rl.windowDuration {
		rl.attempts[key] = &attemptRecord{count: 1, firstAttempt: now}
		return
	}

	record.count++
	if record.count >= rl.maxAttempts {
		record.lockedUntil = now.Add(rl.lockoutDuration)
	}
}

// RecordSuccess clears tracking for the IP+username pair after a
// successful login.
func (rl *RateLimiter) RecordSuccess(ip, username string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.attempts, ip+":"+username)
}

// cleanupLoop periodically drops stale records so the map doesn't grow
// without bound under scanning traffic.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCleanup:
			return
		case <-ticker.C:
			now := time.Now()
			rl.mu.Lock()
			for key, record := range rl.attempts {
				if now.Sub(record.firstAttempt) > rl.windowDuration && now.After(record.lockedUntil) {
					delete(rl.attempts, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
