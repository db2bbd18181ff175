package service

import (
	"testing"
	"time"
)

func TestSignupThrottleRecentWithinTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	th := NewSignupThrottle(60 * time.Second)
	th.now = func() time.Time { return now }

	if th.Recent("a@b.co") {
		t.Fatalf("fresh email must not be throttled")
	}

	th.Record("a@b.co")
	now = now.Add(30 * time.Second)
	if !th.Recent("a@b.co") {
		t.Fatalf("attempt within TTL must be throttled")
	}
}

func TestSignupThrottleExpires(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	th := NewSignupThrottle(60 * time.Second)
	th.now = func() time.Time { return now }

	th.Record("a@b.co")
	now = now.Add(61 * time.Second)
	if th.Recent("a@b.co") {
		t.Fatalf("attempt past TTL must not be throttled")
	}

	// The expired entry is pruned, not just ignored.
	if len(th.attempts) != 0 {
		t.Errorf("expired entries must be pruned, map has %d entries", len(th.attempts))
	}
}

func TestSignupThrottleIsPerEmail(t *testing.T) {
	th := NewSignupThrottle(time.Minute)
	th.Record("a@b.co")

	if th.Recent("other@b.co") {
		t.Fatalf("throttle must be scoped per email")
	}
	if !th.Recent("a@b.co") {
		t.Fatalf("recorded email must be throttled")
	}
}
