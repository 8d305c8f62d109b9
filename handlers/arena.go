package handlers

import (
	"errors"
	"net/http"

	"arenabook/middleware"
	"arenabook/services/arena"

	"github.com/gin-gonic/gin"
)

// ArenaHandler exposes arena profile management.
type ArenaHandler struct {
	svc arena.ArenaService
}

// NewArenaHandler constructs an ArenaHandler.
func NewArenaHandler(svc arena.ArenaService) *ArenaHandler {
	return &ArenaHandler{svc: svc}
}

// CreateArena registers a new arena owned by the caller.
// POST /api/arenas
func (h *ArenaHandler) CreateArena(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input arena.CreateArenaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.svc.CreateArena(c.Request.Context(), userID, input)
	if err != nil {
		respondArenaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": created.ID, "data": created})
}

// GetArena returns an arena profile.
// GET /api/arenas/:id
func (h *ArenaHandler) GetArena(c *gin.Context) {
	found, err := h.svc.GetArena(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondArenaError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateArena applies a partial update, manager only.
// PATCH /api/arenas/:id
func (h *ArenaHandler) UpdateArena(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.svc.UpdateArena(c.Request.Context(), userID, c.Param("id"), fields); err != nil {
		respondArenaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondArenaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, arena.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "arena not found"})
	case errors.Is(err, arena.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not the manager of this arena"})
	case errors.Is(err, arena.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
