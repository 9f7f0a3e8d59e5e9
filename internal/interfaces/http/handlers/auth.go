// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/session"
	"github.com/your-org/saree-storefront/internal/domain/user"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
	"github.com/your-org/saree-storefront/internal/pkg/auth"
	"gorm.io/gorm"
)

// AuthHandler handles authentication endpoints. Sign-in doubles as the
// trigger for the session migration: the anonymous cart and wishlist are
// merged into the user's persisted state before tokens are issued.
type AuthHandler struct {
	users    *user.Service
	sessions *session.Manager
	jwt      *auth.JWTManager
	logger   *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, sessions *session.Manager, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		users:    user.NewService(db, cfg),
		sessions: sessions,
		jwt:      auth.NewJWTManager(cfg),
		logger:   logger,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	account, err := h.users.Register(&req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"data":    account,
	})
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

	account, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		writeError(c, err)
		return
	}

	// Migrate the anonymous session into the authenticated user's state.
	// A collaborator failure aborts the login so the UI can retry.
	s := resolveSession(c, h.sessions)
	if err := s.SignIn(c.Request.Context(), account.ID); err != nil {
		if errors.Is(err, apperrors.ErrStaleResponse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Session changed during sign-in, please retry"})
			return
		}
		h.logger.WithError(err).WithField("user_id", account.ID).Warn("session migration failed")
		writeError(c, err)
		return
	}

	accessToken, err := h.jwt.GenerateAccessToken(account.ID, account.Email, account.IsAdmin)
	if err != nil {
		writeError(c, err)
		return
	}
	refreshToken, err := h.jwt.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":          account,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"cart": gin.H{
				"items":  s.CartItems(),
				"totals": s.CartTotals(),
			},
			"wishlist": gin.H{
				"items": s.WishlistItems(),
				"count": s.WishlistTotalItems(),
			},
		},
	})
}

// Logout handles POST /auth/logout. The session reverts to anonymous with
// empty local stores; the user's persisted documents stay untouched.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := resolveSession(c, h.sessions)
	s.SignOut()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
