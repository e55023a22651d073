package api

import (
	"context"  // Request scoped storage calls
	"errors"   // Parameter errors
	"net/http" // HTTP status codes
	"strconv"  // ID parsing
	"strings"  // Boolean parsing

	"complaint_system/internal/domain" // Importing domain models
	"complaint_system/internal/utils"  // Cache keys

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// ComplaintStore persists complaints
type ComplaintStore interface {
	CreateComplaint(ctx context.Context, complaint *domain.Complaint) error
	ListComplaints(ctx context.Context, resolved *bool) ([]domain.Complaint, error)
	GetComplaint(ctx context.Context, id uint) (*domain.Complaint, error)
	ResolveComplaint(ctx context.Context, id uint) (*domain.Complaint, error)
}

// CreateComplaintRequest is the complaint payload. Both keys must be
// present; empty strings are accepted.
type CreateComplaintRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

// cacheHeader tells clients whether a read was served from Redis
const cacheHeader = "X-Cache"

var errInvalidBool = errors.New("invalid boolean")

// CreateComplaintHandler files a complaint for the customer named by the customer_id query parameter
func CreateComplaintHandler(store ComplaintStore, cache *responseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := parseID(c.Query("customer_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id"})
			return
		}
		var req CreateComplaintRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		complaint := domain.Complaint{Title: *req.Title, Description: *req.Description, CustomerID: customerID}
		if err := store.CreateComplaint(c.Request.Context(), &complaint); err != nil {
			respondError(c, err)
			return
		}
		cache.bumpLists(c.Request.Context())
		logrus.WithFields(logrus.Fields{
			"complaint_id": complaint.ID,
			"customer_id":  complaint.CustomerID,
		}).Info("Complaint filed")
		c.JSON(http.StatusCreated, complaint)
	}
}

// ListComplaintsHandler returns every complaint, optionally filtered by the resolved query parameter
func ListComplaintsHandler(store ComplaintStore, cache *responseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resolved *bool
		if raw, ok := c.GetQuery("resolved"); ok {
			v, err := parseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resolved filter"})
				return
			}
			resolved = &v
		}
		ctx := c.Request.Context()
		// The generation is read before the database so a concurrent write moves past it
		key, cacheable := cache.listKey(ctx, resolved)
		var complaints []domain.Complaint
		if cacheable && cache.get(ctx, key, &complaints) && complaints != nil {
			c.Header(cacheHeader, "HIT")
			c.JSON(http.StatusOK, complaints)
			return
		}
		complaints, err := store.ListComplaints(ctx, resolved)
		if err != nil {
			respondError(c, err)
			return
		}
		if cacheable {
			cache.fill(ctx, key, complaints)
		}
		c.Header(cacheHeader, "MISS")
		c.JSON(http.StatusOK, complaints)
	}
}

// GetComplaintHandler returns one complaint by ID
func GetComplaintHandler(store ComplaintStore, cache *responseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint id"})
			return
		}
		ctx := c.Request.Context()
		key := utils.ComplaintKey(id)
		var complaint domain.Complaint
		if cache.get(ctx, key, &complaint) {
			c.Header(cacheHeader, "HIT")
			c.JSON(http.StatusOK, complaint)
			return
		}
		found, err := store.GetComplaint(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		cache.fill(ctx, key, found)
		c.Header(cacheHeader, "MISS")
		c.JSON(http.StatusOK, found)
	}
}

// ResolveComplaintHandler marks a complaint resolved
func ResolveComplaintHandler(store ComplaintStore, cache *responseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint id"})
			return
		}
		ctx := c.Request.Context()
		complaint, err := store.ResolveComplaint(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		// Write through so the cached row can only move forward
		cache.put(ctx, utils.ComplaintKey(complaint.ID), complaint)
		cache.bumpLists(ctx)
		logrus.WithFields(logrus.Fields{
			"complaint_id": complaint.ID,
			"customer_id":  complaint.CustomerID,
		}).Info("Complaint resolved")
		c.JSON(http.StatusOK, complaint)
	}
}

// parseID parses a positive decimal identifier
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}

// parseBool accepts the usual spellings of a query string boolean
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "t", "yes", "y", "on":
		return true, nil
	case "false", "0", "f", "no", "n", "off":
		return false, nil
	}
	return false, errInvalidBool
}
