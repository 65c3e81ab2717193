package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterEntry holds a rate limiter with last used timestamp
type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// Throttle manages per-key rate limiters with automatic cleanup. A nil
// *Throttle allows everything.
type Throttle struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewThrottle allows requestsPerMinute per key with the given burst.
// It returns nil when requestsPerMinute is not positive.
func NewThrottle(requestsPerMinute, burst int) *Throttle {
	if requestsPerMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	t := &Throttle{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go t.cleanupLoop()
	return t
}

// Allow reports whether one more request for key is permitted now
func (t *Throttle) Allow(key string) bool {
	if t == nil {
		return true
	}
	return t.getLimiter(key).Allow()
}

func (t *Throttle) getLimiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.limiters[key]; ok {
		entry.lastUsed = time.Now()
		return entry.limiter
	}
	limiter := rate.NewLimiter(t.limit, t.burst)
	t.limiters[key] = &limiterEntry{
		limiter:  limiter,
		lastUsed: time.Now(),
	}
	return limiter
}

// cleanupLoop removes stale entries every 5 minutes
func (t *Throttle) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.cleanup(time.Now().Add(-10 * time.Minute))
		case <-t.stopCh:
			return
		}
	}
}

// cleanup removes entries not used since cutoff
func (t *Throttle) cleanup(cutoff time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, entry := range t.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(t.limiters, key)
		}
	}
}

// Stop terminates the cleanup goroutine
func (t *Throttle) Stop() {
	if t == nil {
		return
	}
	t.stopOnce.Do(func() { close(t.stopCh) })
}
