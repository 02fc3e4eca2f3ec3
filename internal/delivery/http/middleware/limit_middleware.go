package middleware

import (
	"strconv"

	"goalazo/config"
	"goalazo/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const limitContextKey = "limit"

// LimitMiddleware clamps the ?limit query parameter on list routes so no
// request can ask for an unbounded result set.
type LimitMiddleware struct {
	maxLimit int
}

// NewLimitMiddleware creates a new limit middleware from configuration.
func NewLimitMiddleware(cfg *config.Config) *LimitMiddleware {
	maxLimit := 50
	if cfg != nil && cfg.Request != nil && cfg.Request.MaxLimit > 0 {
		maxLimit = cfg.Request.MaxLimit
	}

	return &LimitMiddleware{maxLimit: maxLimit}
}

// Handle parses the limit query parameter. A missing limit falls back to the
// configured maximum; anything above the maximum is clamped down to it.
func (m *LimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := m.maxLimit

		if raw := c.QueryParam("limit"); raw != "" {
			// Zero is the repositories' unbounded sentinel, so it is rejected
			// here along with anything non-numeric or negative.
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return response.BadRequest(c, "VALIDATION_FAILED", "limit must be a positive integer")
			}
			if parsed < limit {
				limit = parsed
			}
		}

		c.Set(limitContextKey, limit)

		return next(c)
	}
}

// GetLimit extracts the clamped limit set by Handle. Returns 0 when the
// middleware did not run on this route.
func GetLimit(c echo.Context) int {
	if limit, ok := c.Get(limitContextKey).(int); ok {
		return limit
	}

	return 0
}
