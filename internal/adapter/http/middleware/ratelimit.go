package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "ar-engine/internal/adapter/storage/redis"
	"ar-engine/pkg/apperror"
	"ar-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-endpoint-group rate limits, all
// counted over one-minute windows. Login is the tightest (10) and refunds
// next (30); webhook ingestion gets the highest allowance (600) since the
// processor delivers events in bursts.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"charges":        {Limit: 100, Window: time.Minute},
		"refunds":        {Limit: 30, Window: time.Minute},
		"webhooks":       {Limit: 600, Window: time.Minute},
		"auth_login":     {Limit: 10, Window: time.Minute},
		"invoices":       {Limit: 120, Window: time.Minute},
		"subscriptions":  {Limit: 60, Window: time.Minute},
		"payment_methods": {Limit: 60, Window: time.Minute},
		"reports":        {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the
// authenticated tenant when available, falling back to client IP for
// unauthenticated routes (login, webhooks).
func extractIdentifier(c *gin.Context) string {
	if tid, exists := c.Get(CtxTenantID); exists {
		return fmt.Sprintf("%v", tid)
	}
	if slug := c.Param("tenant_slug"); slug != "" {
		return "webhook:" + slug
	}
	return c.ClientIP()
}
