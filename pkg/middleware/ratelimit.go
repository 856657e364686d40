package middleware

import (
	"net/http"

	"backend-games/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tooManyRequestsMessage = "Too many requests :("

// RateLimit applies one token bucket to all requests. rps <= 0 disables it.
func RateLimit(rps float64, burst int, logger *zap.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}

	// rate.Limiter is safe for concurrent use
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				w.Header().Set("Retry-After", "1")
				utils.ResponseError(w, http.StatusTooManyRequests, tooManyRequestsMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
