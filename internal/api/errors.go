package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // Tag parameter parsing
	"strings"  // Field name formatting
	"sync"     // One-time validator registration

	"complaint_system/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin request validator
	"github.com/go-playground/validator/v10" // Validation error details
	"github.com/sirupsen/logrus"             // Structured logging
)

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// respondError maps domain errors to status codes. Anything unknown is
// logged with its cause and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
	case errors.Is(err, domain.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, domain.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	default:
		_ = c.Error(err)
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"error":  err.Error(),
		}).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBadRequest reports a malformed request, listing field problems when
// the binding failed validation rather than decoding
func respondBadRequest(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			details = append(details, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
				Type:    fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "maxbytes":
		return "Must be at most " + fe.Param() + " bytes"
	default:
		return "Invalid value"
	}
}

var registerValidations sync.Once

// registerBindingValidations adds the custom tags used by request structs to gin's validator
func registerBindingValidations() {
	registerValidations.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("maxbytes", maxBytes)
		}
	})
}

// maxBytes limits a string's length in bytes; the stock max tag counts runes
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
