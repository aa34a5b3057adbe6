package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/ratelimit"
)

func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				// fail open: a limiter outage must not take requests down
				log.Printf("rate limiter unavailable: %v", err)
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
