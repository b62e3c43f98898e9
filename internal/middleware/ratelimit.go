package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swarmwrapped/wrapped-backend-go/pkg/response"
)

// visitor tracks one client's recent request times inside the window.
type visitor struct {
	seen []time.Time
}

// throttle is a per-client sliding-window limiter. One wrapped report fans
// out into a full page-by-page history fetch upstream, so the report
// endpoints cap how often a single client can trigger that.
type throttle struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

func newThrottle(limit int, window time.Duration) *throttle {
	th := &throttle{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go th.evictIdle()
	return th
}

// allow records a request for the client and reports whether it fits inside
// the window.
func (th *throttle) allow(client string) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	now := time.Now()
	v, ok := th.visitors[client]
	if !ok {
		th.visitors[client] = &visitor{seen: []time.Time{now}}
		return true
	}

	v.seen = pruneBefore(v.seen, now.Add(-th.window))
	if len(v.seen) >= th.limit {
		return false
	}
	v.seen = append(v.seen, now)
	return true
}

// evictIdle drops clients whose whole history has aged out, once per window.
func (th *throttle) evictIdle() {
	ticker := time.NewTicker(th.window)
	defer ticker.Stop()

	for range ticker.C {
		th.mu.Lock()
		cutoff := time.Now().Add(-th.window)
		for client, v := range th.visitors {
			v.seen = pruneBefore(v.seen, cutoff)
			if len(v.seen) == 0 {
				delete(th.visitors, client)
			}
		}
		th.mu.Unlock()
	}
}

func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	kept := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// RateLimit caps requests per client IP at limit per window.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	th := newThrottle(limit, window)

	return func(c *gin.Context) {
		if !th.allow(c.ClientIP()) {
			response.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
