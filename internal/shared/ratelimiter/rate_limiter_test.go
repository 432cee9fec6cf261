package ratelimiter

import (
	"testing"
	"time"
)

// TestRateLimiter_AllowWithinLimit は上限以内のリクエストが許可されることを検証します。
func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Errorf("request %d should be allowed", i+1)
		}
	}
}

// TestRateLimiter_RejectOverLimit は上限を超えたリクエストが拒否されることを検証します。
func TestRateLimiter_RejectOverLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, time.Minute)

	rl.Allow()
	rl.Allow()

	if rl.Allow() {
		t.Error("request over the limit should be rejected")
	}
}

// TestRateLimiter_ResetAfterInterval はインターバル経過後にカウントがリセットされることを検証します。
func TestRateLimiter_ResetAfterInterval(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 20*time.Millisecond)

	if !rl.Allow() {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow() {
		t.Fatal("second request should be rejected")
	}

	time.Sleep(30 * time.Millisecond)

	if !rl.Allow() {
		t.Error("request after the interval should be allowed again")
	}
}

// TestRateLimiter_ConcurrentAccess は並行アクセスでもカウントが上限を超えないことを検証します。
func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	const limit = 10
	rl := NewRateLimiter(limit, time.Minute)

	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		go func() {
			allowed <- rl.Allow()
		}()
	}

	count := 0
	for i := 0; i < 100; i++ {
		if <-allowed {
			count++
		}
	}

	if count != limit {
		t.Errorf("expected exactly %d allowed requests, got %d", limit, count)
	}
}
