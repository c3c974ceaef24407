// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// AuthHandler handles the back-office login endpoint
type AuthHandler struct {
	config          *config.Config
	jwtManager      *auth.JWTManager
	passwordManager *auth.PasswordManager
	adminHash       string
}

// NewAuthHandler creates a new auth handler. The configured admin password is
// hashed once at startup so login always goes through a bcrypt comparison.
func NewAuthHandler(cfg *config.Config) (*AuthHandler, error) {
	passwordManager := auth.NewPasswordManager(cfg)
	hash, err := passwordManager.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		config:          cfg,
		jwtManager:      auth.NewJWTManager(cfg),
		passwordManager: passwordManager,
		adminHash:       hash,
	}, nil
}

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !strings.EqualFold(req.Email, h.config.Admin.Email) ||
		h.passwordManager.VerifyPassword(req.Password, h.adminHash) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(h.config.Admin.Email, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	logrus.WithField("email", h.config.Admin.Email).Info("Admin login")

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": time.Now().UTC().Add(h.config.JWT.AccessTokenExpiry),
	})
}
