package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"vidtube/internal/common"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter controls how frequently a caller may perform an action.
type RateLimiter interface {
	Allow(key string) bool
}

// ipRateLimiter keeps one token bucket per key in a bounded LRU table.
// Buckets idle for longer than ttl start over.
type ipRateLimiter struct {
	mu       sync.Mutex
	visitors *lru.Cache[string, *visitor]
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

// NewIPRateLimiter allows `requests` events per `window` per key, plus burst.
// At most `clients` keys are tracked; the least recently seen is evicted.
func NewIPRateLimiter(requests int, window time.Duration, burst, clients int, ttl time.Duration) RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Second
	}
	if burst <= 0 {
		burst = 1
	}
	if clients <= 0 {
		clients = 10000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	visitors, _ := lru.New[string, *visitor](clients)
	return &ipRateLimiter{
		visitors: visitors,
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (l *ipRateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	l.mu.Lock()
	now := l.now()
	v, ok := l.visitors.Get(key)
	if !ok || now.Sub(v.lastSeen) > l.ttl {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors.Add(key, v)
	}
	v.lastSeen = now
	allowed := v.limiter.AllowN(now, 1)
	l.mu.Unlock()

	return allowed
}

// RateLimit rejects callers over their budget with a 429 envelope.
func RateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				common.WriteError(w, r, &common.APIError{
					StatusCode: http.StatusTooManyRequests,
					Message:    "Too many requests",
					Errors:     []string{},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
