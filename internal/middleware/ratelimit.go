package middleware

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"userportal/pkg/clientip"
)

const (
	// RateLimitWindow is the fixed window for counting requests per IP.
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window.
	RateLimitMaxRequests = 100
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting.
	RateLimitKeyPrefix = "ratelimit:"
)

// RateLimit counts requests per client IP in Redis and answers 429 once the
// window limit is exceeded. Fails open when Redis is unavailable.
func RateLimit(client *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := RateLimitKeyPrefix + clientip.RealClientIP(r)
			ctx := r.Context()

			count, err := client.Incr(ctx, key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				client.Expire(ctx, key, RateLimitWindow)
			}

			if count > RateLimitMaxRequests {
				http.Error(w, "Too many requests. Please slow down.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
