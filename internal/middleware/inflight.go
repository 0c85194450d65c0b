package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// inflightTTL bounds how long an abandoned guard entry can block a client.
const inflightTTL = 2 * time.Minute

// InFlightGuard rejects a new search while one is still pending for the same
// client, the server-side counterpart of the disabled search control in the
// UI. It is advisory: when Redis is unavailable the request proceeds.
type InFlightGuard struct {
	redis *redis.Client
}

// NewInFlightGuard creates a new InFlightGuard instance.
func NewInFlightGuard(redisClient *redis.Client) *InFlightGuard {
	return &InFlightGuard{redis: redisClient}
}

// Guard returns the middleware handler.
func (g *InFlightGuard) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "search:inflight:" + clientKey(c)

		ok, err := g.redis.SetNX(c.Request.Context(), key, "1", inflightTTL).Result()
		if err != nil {
			log.Printf("[InFlightGuard] guard unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "a search is already in flight",
			})
			return
		}

		// Release with a fresh context: the request context may already be
		// done by the time the handler returns.
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := g.redis.Del(ctx, key).Err(); err != nil {
				log.Printf("[InFlightGuard] failed to release %s: %v", key, err)
			}
		}()

		c.Next()
	}
}

// clientKey identifies the searching client. The SPA sends a stable
// X-Client-ID; anonymous callers fall back to their IP.
func clientKey(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return c.ClientIP()
}
