package service

import (
	"sync"
	"time"
)

// SignupThrottle remembers recent sign-up attempts per email with a TTL.
// The store is injectable so it can be swapped for a shared backend later
// and exercised from tests with a fake clock.
type SignupThrottle struct {
	mu       sync.Mutex
	ttl      time.Duration
	attempts map[string][]time.Time
	now      func() time.Time
}

func NewSignupThrottle(ttl time.Duration) *SignupThrottle {
	return &SignupThrottle{
		ttl:      ttl,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Recent reports whether the email attempted a sign-up within the TTL.
// Expired entries are pruned as a side effect.
func (t *SignupThrottle) Recent(email string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.ttl)
	valid := t.attempts[email][:0]
	for _, ts := range t.attempts[email] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	if len(valid) == 0 {
		delete(t.attempts, email)
		return false
	}
	t.attempts[email] = valid
	return true
}

// Record registers a successful sign-up attempt for the email.
func (t *SignupThrottle) Record(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attempts[email] = append(t.attempts[email], t.now())
}
