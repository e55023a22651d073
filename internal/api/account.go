package api

import (
	"context"  // Request scoped storage calls
	"net/http" // HTTP status codes

	"complaint_system/internal/domain" // Importing domain models
	"complaint_system/internal/utils"  // Password hashing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// AccountStore persists accounts
type AccountStore interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`                  // Username must be provided
	Password string `json:"password" binding:"required,maxbytes=72"`      // bcrypt reads at most 72 bytes
	Role     string `json:"role" binding:"required,oneof=customer admin"` // customer or admin
}

// RegisterResponse acknowledges a new account
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// RegisterHandler creates an account with a hashed password
func RegisterHandler(store AccountStore) gin.HandlerFunc {
	registerBindingValidations()
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		account := domain.Account{Username: req.Username, Password: hash, Role: domain.Role(req.Role)}
		if err := store.CreateAccount(c.Request.Context(), &account); err != nil {
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  account.ID,
			"username": account.Username,
			"role":     account.Role,
		}).Info("Account registered")
		c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered successfully", UserID: account.ID})
	}
}
