package middleware

import (
	"Terrace/internal/pkg/ratelimit"
	"Terrace/internal/pkg/response"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 按「动作类 + 用户」限流，必须挂在 AuthMiddleware 之后。
// 拒绝时带上 Retry-After 提示，计数只在放行时消耗。
func RateLimitMiddleware(action string, limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint64("user_id")
		key := action + ":" + strconv.FormatUint(userID, 10)

		decision := limiter.Allow(key)
		if !decision.Allowed {
			retryAfter := int(time.Until(decision.ResetAt).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Fail(c, response.TooManyRequests, "操作过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}
