package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"restomenu/internal/pkg/response"
)

// RateLimit limits requests per client IP using an in-process store.
// formatted is a limiter rate such as "30-M".
func RateLimit(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			log.Error().Err(err).Msg("rate limiter store failed")
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}),
	), nil
}
