package arenaRepo

import (
	"context"

	"arenabook/models"
)

// ArenaRepository defines data access for arena documents.
type ArenaRepository interface {
	// Create persists a new arena document.
	Create(ctx context.Context, arena *models.Arena) error
	// GetByID retrieves an arena by its unique ID. Returns ErrNotFound when no
	// document matches.
	GetByID(ctx context.Context, arenaID string) (*models.Arena, error)
	// UpdateFields applies a partial update to an arena document.
	UpdateFields(ctx context.Context, arenaID string, fields map[string]interface{}) error
}
