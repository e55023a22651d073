package api

import (
	"context"  // Probe timeouts
	"net/http" // HTTP status codes
	"time"     // Probe timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Pinger reports whether storage is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports database and cache health. Only the database is
// required; a broken cache degrades reads but does not fail the check.
func HealthHandler(db Pinger, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code := "ok", http.StatusOK
		dbStatus := "healthy"
		if err := db.Ping(ctx); err != nil {
			dbStatus = "unhealthy"
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		cacheStatus := "disabled"
		if rdb != nil {
			cacheStatus = "healthy"
			if err := rdb.Ping(ctx).Err(); err != nil {
				cacheStatus = "unhealthy"
			}
		}
		c.JSON(code, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		})
	}
}
