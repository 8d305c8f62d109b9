package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	arenaRepo "arenabook/database/repository/arena"
	orderRepo "arenabook/database/repository/order"
	"arenabook/models"
	"arenabook/utils"

	"go.uber.org/zap"
)

// cancellationWindow is the minimum lead time before the reservation start at
// which cancellation is still permitted.
const cancellationWindow = 24 * time.Hour

// CancelByOwner releases a paid reservation on behalf of the user who made it.
func (s *DefaultBookingService) CancelByOwner(ctx context.Context, userID, orderID string) error {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return NewBookingError(CodeForbidden, "this is not your booking")
	}
	return s.cancel(ctx, order)
}

// CancelByManager releases a paid reservation on behalf of the arena's manager.
func (s *DefaultBookingService) CancelByManager(ctx context.Context, userID, orderID, arenaID string) error {
	arena, err := s.Arenas.GetByID(ctx, arenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return NewBookingError(CodeNotFound, "arena not found")
		}
		return fmt.Errorf("failed to look up arena %s: %w", arenaID, err)
	}
	if arena.CreatedBy != userID {
		return NewBookingError(CodeForbidden, "you are not the manager of this arena")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ArenaID != arenaID {
		return NewBookingError(CodeNotFound, "booking does not belong to this arena")
	}
	return s.cancel(ctx, order)
}

func (s *DefaultBookingService) loadOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			return nil, NewBookingError(CodeNotFound, "booking not found")
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	return order, nil
}

// cancel enforces the time window and marks the order cancelled. Only paid
// reservations block the calendar, so the interval reopens immediately.
func (s *DefaultBookingService) cancel(ctx context.Context, order *models.Order) error {
	if order.Status != models.OrderStatusPaid {
		return NewBookingError(CodeNotFound, "only paid bookings can be cancelled")
	}

	remaining := order.StartTime.Sub(s.now())
	if remaining < cancellationWindow {
		hours := math.Round(remaining.Hours()*10) / 10
		if hours < 0 {
			hours = 0
		}
		return NewTooLateToCancelError(hours)
	}

	if err := s.Orders.MarkCancelled(ctx, order.ID); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", order.ID, err)
	}

	utils.GetLogger().Info("Booking cancelled",
		zap.String("orderID", order.ID),
		zap.String("arenaID", order.ArenaID))
	s.invalidateAvailability(ctx, order.ArenaID)
	return nil
}
