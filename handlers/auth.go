package handlers

import (
	"net/http"

	"arenabook/middleware"
	"arenabook/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler invalidates the caller's cached credential so a stale token
// cannot keep riding the auth cache.
// POST /api/auth/logout
func LogoutHandler(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := utils.InvalidateAuthCache(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Warn("Failed to invalidate auth cache entry")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
