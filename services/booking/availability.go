package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	arenaRepo "arenabook/database/repository/arena"
	"arenabook/models"
	"arenabook/utils"

	"go.uber.org/zap"
)

// availabilityCacheTTL keeps cached interval sets short-lived; finalization
// and cancellation invalidate the key eagerly anyway.
const availabilityCacheTTL = 30 * time.Second

// ListBookedIntervals returns the intervals occupied by paid reservations for
// an arena, sorted by start time.
func (s *DefaultBookingService) ListBookedIntervals(ctx context.Context, arenaID string) ([]models.Slot, error) {
	logger := utils.GetLogger()

	if _, err := s.Arenas.GetByID(ctx, arenaID); err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return nil, NewBookingError(CodeNotFound, "arena not found")
		}
		return nil, fmt.Errorf("failed to look up arena %s: %w", arenaID, err)
	}

	cacheKey := utils.AvailabilityCachePrefix + arenaID
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var slots []models.Slot
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("Discarding malformed availability cache entry", zap.String("arenaID", arenaID))
		}
	}

	orders, err := s.Orders.ListPaidByArena(ctx, arenaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid orders for arena %s: %w", arenaID, err)
	}

	slots := make([]models.Slot, 0, len(orders))
	for _, o := range orders {
		slots = append(slots, o.Interval())
	}

	if s.Cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, availabilityCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache availability", zap.String("arenaID", arenaID), zap.Error(err))
			}
		}
	}

	return slots, nil
}

// BuildSelection fetches the arena's booked intervals and applies the slot
// selection rules against the server clock.
func (s *DefaultBookingService) BuildSelection(ctx context.Context, arenaID string, current []models.Slot, candidate models.Slot) ([]models.Slot, error) {
	booked, err := s.ListBookedIntervals(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	return ApplySlotSelection(booked, current, candidate, s.now())
}

// invalidateAvailability drops the cached interval set for an arena after a
// state change that affects the calendar.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, arenaID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCachePrefix+arenaID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate availability cache",
			zap.String("arenaID", arenaID), zap.Error(err))
	}
}
