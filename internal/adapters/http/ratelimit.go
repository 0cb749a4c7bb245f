package httpadapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	api "policydesk/internal/api"
)

var errRateLimited = errors.New("too many quote requests, slow down")

// QuoteLimiter keeps one token bucket per client address for the public
// quote endpoint. At most max buckets are kept. When full, buckets that have
// refilled completely are dropped, since a fresh bucket behaves the same; if
// none has, new clients are refused until one does.
type QuoteLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	max      int
	now      func() time.Time
}

func NewQuoteLimiter(perSecond float64, burst int) *QuoteLimiter {
	return &QuoteLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		max:      10000,
		now:      time.Now,
	}
}

func (l *QuoteLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	lim, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= l.max && l.evictIdle(now) == 0 {
			return false
		}
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	return lim.AllowN(now, 1)
}

// evictIdle drops buckets that are full again and reports how many went.
func (l *QuoteLimiter) evictIdle(now time.Time) int {
	n := 0
	for key, lim := range l.limiters {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
			n++
		}
	}
	return n
}

// Middleware limits the CreateQuote operation only.
func (l *QuoteLimiter) Middleware(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	if operationID != "CreateQuote" {
		return f
	}
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		if !l.allow(clientKey(r)) {
			return nil, errRateLimited
		}
		return f(ctx, w, r, request)
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
