package api

import (
	"time" // Cache TTL

	"complaint_system/internal/middleware" // Request logging and recovery

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Store is everything the routes need from the persistence layer
type Store interface {
	AccountStore
	ComplaintStore
	Pinger
}

// NewRouter wires every route onto a fresh engine. rdb may be nil to run without a cache.
func NewRouter(store Store, rdb *redis.Client, cacheTTL time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())

	cache := newResponseCache(rdb, cacheTTL)

	r.GET("/health", HealthHandler(store, rdb))
	r.POST("/register/", RegisterHandler(store))

	complaints := r.Group("/complaints")
	complaints.POST("/", CreateComplaintHandler(store, cache))
	complaints.GET("/", ListComplaintsHandler(store, cache))
	complaints.GET("/:id/", GetComplaintHandler(store, cache))
	complaints.PUT("/:id/resolve/", ResolveComplaintHandler(store, cache))
	return r
}
