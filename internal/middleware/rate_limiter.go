package middleware

import (
	"fmt"
	"net/http"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter limits requests per client IP. formatted uses the ulule format
// ("1000-M", "20-M", ...). Counters live in Redis when rdb is set so every
// instance shares them, otherwise in process memory.
func RateLimiter(name, formatted string, rdb *redis.Client) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", name, err)
	}

	opts := limiter.StoreOptions{
		Prefix:          "limiter:" + name,
		MaxRetry:        limiter.DefaultMaxRetry,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}
	var store limiter.Store
	if rdb != nil {
		store, err = sredis.NewStoreWithOptions(rdb, opts)
		if err != nil {
			return nil, fmt.Errorf("rate limit %s store: %w", name, err)
		}
	} else {
		store = memory.NewStoreWithOptions(opts)
	}

	return mgin.NewMiddleware(limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests"))
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// Store failures let the request through.
			log.Error().Err(err).Str("limiter", name).Msg("rate limiter store failure")
			c.Next()
		}),
	), nil
}
