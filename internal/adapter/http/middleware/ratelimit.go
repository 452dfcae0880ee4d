package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "crypto-casino-core/internal/adapter/storage/redis"
	"crypto-casino-core/pkg/apperror"
	"crypto-casino-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group. Wagers
// run hot by nature; withdrawal and session creation are throttled harder.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"session_start": {Limit: 30, Window: time.Hour},
		"auth_login":    {Limit: 10, Window: time.Minute},
		"wager":         {Limit: 120, Window: time.Minute},
		"fairness":      {Limit: 60, Window: time.Minute},
		"withdrawals":   {Limit: 30, Window: time.Minute},
		"wallet":        {Limit: 60, Window: time.Minute},
		"admin":         {Limit: 60, Window: time.Minute},
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

// extractIdentifier determines the rate limit key source: the authenticated
// session or operator when present, the client IP otherwise.
func extractIdentifier(c *gin.Context) string {
	if sid, exists := c.Get(CtxSessionID); exists {
		return fmt.Sprintf("%v", sid)
	}
	if oid, exists := c.Get(CtxOperatorID); exists {
		return fmt.Sprintf("%v", oid)
	}
	return c.ClientIP()
}
