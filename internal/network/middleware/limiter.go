package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/denmor86/ya-orderdesk/internal/logger"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter - limit запросов в секунду, burst - допустимый всплеск.
// limit <= 0 означает отсутствие ограничения.
func NewRateLimiter(limit int, burst int) *RateLimiter {
	l := rate.Inf
	if limit > 0 {
		l = rate.Limit(limit)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(l, burst),
	}
}

func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// retryAfter - через сколько секунд появится следующий токен
func (rl *RateLimiter) retryAfter() int {
	limit := rl.limiter.Limit()
	if limit == rate.Inf || limit <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/float64(limit))))
}

// Limit - middleware, отклоняющий запросы сверх лимита с кодом 429
func (rl *RateLimiter) Limit(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow() {
			logger.Warnw("rate limit exceeded", "uri", r.URL.Path, "remote", r.RemoteAddr)
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests"}`))
			return
		}
		h.ServeHTTP(w, r)
	})
}
