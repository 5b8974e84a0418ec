package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key rate limiter. It guards the auth
// endpoints against credential stuffing; one key is one client IP. Safe for
// concurrent use; idle buckets are dropped by a background sweep.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens refilled per second
	capacity float64
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewTokenBucket creates a limiter allowing bursts of capacity requests per
// key, refilling at rate tokens per second.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
	}
	go tb.sweep()
	return tb
}

// Allow consumes one token for key. It reports false when the bucket is
// empty, meaning the caller should be rejected.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, seen: time.Now()}
		tb.buckets[key] = b
	}

	now := time.Now()
	b.tokens = min(b.tokens+now.Sub(b.seen).Seconds()*tb.rate, tb.capacity)
	b.seen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (tb *TokenBucket) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		tb.mu.Lock()
		cutoff := time.Now().Add(-10 * time.Minute)
		for key, b := range tb.buckets {
			if b.seen.Before(cutoff) {
				delete(tb.buckets, key)
			}
		}
		tb.mu.Unlock()
	}
}
