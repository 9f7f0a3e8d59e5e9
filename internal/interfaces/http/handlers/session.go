// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/domain/session"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// resolveSession resolves the caller's session from the X-Session-ID header
// or the session cookie, creating a fresh anonymous session when neither is
// present. The issued ID is echoed back on both channels.
func resolveSession(c *gin.Context, manager *session.Manager) *session.Session {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		sessionID, _ = c.Cookie("session_id")
	}

	s := manager.Resolve(sessionID)

	if s.ID != sessionID {
		c.SetCookie("session_id", s.ID, 86400, "/", "", false, true)
	}
	c.Header("X-Session-ID", s.ID)
	return s
}

// writeError maps domain errors onto HTTP status codes
func writeError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsCollaborator(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
