package handler

import (
	"context"
	"crypto/subtle"
	"net/http"
	"shells-ledger/internal/auth"
	"shells-ledger/internal/metrics"
	"shells-ledger/internal/model"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		log.Info().
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
		Error: msg,
		Code:  "UNAUTHORIZED",
	})
}

// AdminAuthMiddleware requires a bearer token issued by the admin login
func AdminAuthMiddleware(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		subject, err := authenticator.ParseToken(token)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}
		c.Set("admin", subject)
		c.Next()
	}
}

// WebhookSecretMiddleware authenticates payment provider callbacks
func WebhookSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Webhook-Secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			unauthorized(c, "invalid webhook secret")
			return
		}
		c.Next()
	}
}

// RateLimiter is a fixed-window limiter keyed by client IP, backed by Redis INCR/EXPIRE.
// A nil client or a Redis error lets the request through.
type RateLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
}

func NewRateLimiter(client *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, maxRequests: maxRequests, window: window}
}

// NewRedisClient connects to addr and returns nil if it is empty or unreachable
func NewRedisClient(ctx context.Context, addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, rate limiting disabled")
		_ = client.Close()
		return nil
	}
	return client
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.client == nil {
			c.Next()
			return
		}

		// key format: rl:<window_seconds>:<ip>
		key := "rl:" + strconv.FormatInt(int64(rl.window.Seconds()), 10) + ":" + c.ClientIP()
		ctx := c.Request.Context()

		val, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}
		if val == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		if val > int64(rl.maxRequests) {
			metrics.RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: "rate limit exceeded",
				Code:  "RATE_LIMITED",
			})
			return
		}

		metrics.RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}
