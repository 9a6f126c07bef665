package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

var (
	limiters      = make(map[string]*rate.Limiter)
	limitersMutex sync.Mutex

	limitPerSecond rate.Limit = 5
	limitBurst                = 20
)

// ConfigureRateLimit sets the per-IP limiter parameters. Call before serving.
func ConfigureRateLimit(perSecond float64, burst int) {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()
	limitPerSecond = rate.Limit(perSecond)
	limitBurst = burst
	limiters = make(map[string]*rate.Limiter)
}

func getLimiter(ip string) *rate.Limiter {
	limitersMutex.Lock()
	defer limitersMutex.Unlock()

	if limiter, exists := limiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(limitPerSecond, limitBurst)
	limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware applies a per-client-IP token bucket
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		limiter := getLimiter(ip)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
