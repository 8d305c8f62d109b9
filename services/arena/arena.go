package arena

import (
	"context"
	"errors"
	"fmt"
	"time"

	arenaRepo "arenabook/database/repository/arena"
	"arenabook/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the arena does not exist.
	ErrNotFound = errors.New("arena not found")
	// ErrForbidden is returned when the caller is not the arena's manager.
	ErrForbidden = errors.New("not the manager of this arena")
	// ErrInvalidInput is returned when required fields are missing.
	ErrInvalidInput = errors.New("missing required fields")
)

// CreateArena validates the input and persists a new arena owned by the caller.
func (s *DefaultArenaService) CreateArena(ctx context.Context, userID string, input CreateArenaInput) (*models.Arena, error) {
	if input.Name == "" || input.Address == "" || input.City == "" || input.Country == "" {
		return nil, ErrInvalidInput
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	now := time.Now().UTC()
	arena := &models.Arena{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Address:       input.Address,
		City:          input.City,
		Country:       input.Country,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		PricePerHour:  input.PricePerHour,
		Currency:      currency,
		ContactEmail:  input.ContactEmail,
		ContactNumber: input.ContactNumber,
		CoverImageURL: input.CoverImageURL,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, arena); err != nil {
		return nil, fmt.Errorf("failed to create arena: %w", err)
	}
	return arena, nil
}

// GetArena retrieves an arena by id.
func (s *DefaultArenaService) GetArena(ctx context.Context, arenaID string) (*models.Arena, error) {
	arena, err := s.Repo.GetByID(ctx, arenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch arena %s: %w", arenaID, err)
	}
	return arena, nil
}

// UpdateArena applies a partial update after checking the caller manages the
// arena. Ownership and identifiers are not updatable.
func (s *DefaultArenaService) UpdateArena(ctx context.Context, userID, arenaID string, fields map[string]interface{}) error {
	arena, err := s.GetArena(ctx, arenaID)
	if err != nil {
		return err
	}
	if arena.CreatedBy != userID {
		return ErrForbidden
	}

	for _, immutable := range []string{"id", "created_by", "created_at"} {
		delete(fields, immutable)
	}
	if len(fields) == 0 {
		return ErrInvalidInput
	}

	if err := s.Repo.UpdateFields(ctx, arenaID, fields); err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update arena %s: %w", arenaID, err)
	}
	return nil
}
