package ratelimit

import (
	"fmt"

	"codeberg.org/reclaim/server/internal/errors"
	"codeberg.org/reclaim/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const DefaultRate = "300-M"

const storePrefix = "reclaim:ratelimit"

// builds a per-client limiter; a non-empty redisURL shares counters across instances
func New(rate, redisURL string) (*limiter.Limiter, error) {
	if rate == "" {
		rate = DefaultRate
	}

	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	store, err := newStore(redisURL)
	if err != nil {
		return nil, err
	}

	return limiter.New(store, parsed), nil
}

func newStore(redisURL string) (limiter.Store, error) {
	if redisURL == "" {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: storePrefix}), nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
		Prefix:   storePrefix,
		MaxRetry: 3,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	return store, nil
}

// gin middleware answering 429 in the standard error shape once a client exceeds its rate
func Middleware(l *limiter.Limiter) gin.HandlerFunc {
	return mgin.NewMiddleware(
		l,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			errors.TooManyRequests(c, "rate limit exceeded, try again later")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open: a broken store should not take the API down
			logger.FromContext(c.Request.Context()).Warn("rate limiter unavailable", "error", err)
			c.Next()
		}),
	)
}
