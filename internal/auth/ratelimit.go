package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// LoginLimiter throttles log-in attempts per client IP with a fixed redis
// window. Only attempt counters live in redis; no session state.
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	logger zerolog.Logger
}

func NewLoginLimiter(client *redis.Client, max int64, window time.Duration, logger zerolog.Logger) *LoginLimiter {
	return &LoginLimiter{client: client, max: max, window: window, logger: logger}
}

// Middleware enforces the limit. A nil limiter or an unreachable redis
// fails open so authentication keeps working without it.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	if l == nil || l.client == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return func(ctx *gin.Context) {
		key := "login-attempts:" + ctx.ClientIP()
		attempts, err := l.client.Incr(ctx.Request.Context(), key).Result()
		if err != nil {
			l.logger.Warn().Err(err).Msg("login rate limiter unavailable")
			ctx.Next()
			return
		}
		if attempts == 1 {
			l.client.Expire(ctx.Request.Context(), key, l.window)
		}
		if attempts > l.max {
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many login attempts, please try again later",
			})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// NewRedisClient builds the redis client backing the login limiter.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
