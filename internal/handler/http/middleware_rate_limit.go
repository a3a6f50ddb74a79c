package http

import (
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"golang.org/x/time/rate"
)

const (
	defaultForgotRate  = 1.0 / 60
	defaultForgotBurst = 3

	// maxTrackedClients bounds the limiter map; it is reset when full.
	maxTrackedClients = 10000
)

// ipRateLimiter keeps one token bucket per client address.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(perSecond float64, burst int) *ipRateLimiter {
	if perSecond <= 0 {
		perSecond = defaultForgotRate
	}
	if burst <= 0 {
		burst = defaultForgotBurst
	}
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *ipRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxTrackedClients {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	return limiter.Allow()
}

// rateLimit answers 429 once the caller's address exhausts its bucket.
func (h *Handler) rateLimit(limiter *ipRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiter.allow(ip) {
				logger.FromRequest(r).Warn().Str("ip", ip).Str("uri", r.RequestURI).Msg("too many requests")
				writeMessage(w, r, http.StatusTooManyRequests, app.MsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
