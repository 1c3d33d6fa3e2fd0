package fdc

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between calls. Requests here are
// strictly sequential, so a last-call timestamp is all the bookkeeping
// needed.
type RateLimiter struct {
	mu       sync.Mutex
	lastCall time.Time
	interval time.Duration
}

func NewRateLimiter(requestsPerSecond int) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &RateLimiter{interval: time.Second / time.Duration(requestsPerSecond)}
}

func (r *RateLimiter) WaitTurn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if wait := r.interval - time.Since(r.lastCall); wait > 0 {
		time.Sleep(wait)
	}
	r.lastCall = time.Now()
}
