package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smartodo/pkg/response"
)

// rateLimiter keeps a token bucket per client with auto-cleanup of idle
// entries.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000, // max unique clients tracked
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. A nil limiter (rate limit
// disabled in config) passes everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}
		ip := extractIP(c.Request)
		if !m.rateLimiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractIP resolves the client IP, honoring proxy headers.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}
