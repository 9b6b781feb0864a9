package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
)

// MeHandler reports the identity the bearer token carries; users live in
// the identity provider, not in this database.
type MeHandler struct {
	adminRoles map[string]bool
}

func NewMeHandler(adminRoles []string) *MeHandler {
	roles := make(map[string]bool, len(adminRoles))
	for _, r := range adminRoles {
		roles[r] = true
	}
	return &MeHandler{adminRoles: roles}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error_code": "user_not_in_context"})
		return
	}

	role := c.GetString(middleware.ContextUserRole)

	c.JSON(http.StatusOK, gin.H{
		"id":       userID,
		"email":    c.GetString(middleware.ContextUserEmail),
		"role":     role,
		"is_admin": h.adminRoles[role],
	})
}
