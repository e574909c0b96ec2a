package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studium/internal/infrastructure/ratelimit"
	"studium/internal/shared/logger"
	"studium/internal/shared/utils"
)

// LoginRateLimiter throttles authentication endpoints per client IP.
// When Redis is unreachable the request is allowed through so an
// infrastructure outage cannot lock everyone out.
type LoginRateLimiter struct {
	limiter ratelimit.LoginLimiter
	logger  logger.Interface
}

func NewLoginRateLimiter(limiter ratelimit.LoginLimiter, logger logger.Interface) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *LoginRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			rl.logger.Warnw("login rate limit check failed, allowing request",
				"client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
