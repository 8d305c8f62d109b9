package arena

import (
	"context"

	arenaRepo "arenabook/database/repository/arena"
	"arenabook/models"
)

// CreateArenaInput carries the fields accepted when registering an arena.
type CreateArenaInput struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	PricePerHour  float64 `json:"price_per_hour"`
	Currency      string  `json:"currency"`
	ContactEmail  string  `json:"contact_email"`
	ContactNumber string  `json:"contact_number"`
	CoverImageURL string  `json:"cover_image_url"`
}

// ArenaService manages arena profiles.
type ArenaService interface {
	CreateArena(ctx context.Context, userID string, input CreateArenaInput) (*models.Arena, error)
	GetArena(ctx context.Context, arenaID string) (*models.Arena, error)
	UpdateArena(ctx context.Context, userID, arenaID string, fields map[string]interface{}) error
}

// DefaultArenaService implements ArenaService.
type DefaultArenaService struct {
	Repo arenaRepo.ArenaRepository
}
