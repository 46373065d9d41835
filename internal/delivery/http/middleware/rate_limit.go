package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Counter key prefix, e.g. "rl:ip:"
	KeyPrefix string
	// Whether to reject requests when the counter is unavailable
	FailClosed bool
}

// GlobalRateLimitConfig limits every route per client IP.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
	}
}

// LoginRateLimitConfig returns strict config specifically for login endpoint
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

// UploadRateLimitConfig gates multipart profile writes. Authenticated
// requests are counted per subject, anonymous ones per IP.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:upload:",
		KeyFunc: func(c *gin.Context) string {
			if id := c.GetString(string(domain.KeySubjectID)); id != "" {
				return "subject:" + id
			}
			return "ip:" + c.ClientIP()
		},
	}
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// RateLimit counts requests with the injected counter. Counter failures
// reject the request when FailClosed is set and let it through otherwise.
func RateLimit(counter ratelimit.Counter, config RateLimitConfig, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = clientIP
	}

	return func(c *gin.Context) {
		key := config.KeyPrefix + keyFunc(c)

		count, resetAt, err := counter.Incr(c.Request.Context(), key, config.Window)
		if err != nil {
			log.Warn("rate limit counter unavailable", "key_prefix", config.KeyPrefix, "error", err)
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
			c.Next()
			return
		}

		remaining := max(config.Limit-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := max(int(time.Until(resetAt).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			log.Info("rate limit triggered",
				"key_prefix", config.KeyPrefix,
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString(RequestIDKey),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
