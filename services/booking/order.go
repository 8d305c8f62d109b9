package booking

import (
	"context"
	"errors"
	"fmt"

	arenaRepo "arenabook/database/repository/arena"
	"arenabook/models"
	"arenabook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReservation validates the selected slots, fixes the price, persists a
// pending order and requests a hosted checkout session.
//
// Exactly one order and (when the gateway call succeeds) exactly one checkout
// session are created per call; no retry is attempted. If the gateway fails
// the order stays pending and is reclaimed by the provider's expiry event.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, userID, arenaID string, slots []models.Slot) (*models.CheckoutInfo, error) {
	logger := utils.GetLogger()

	interval, err := validateContiguousHourlySlots(slots)
	if err != nil {
		return nil, err
	}

	arena, err := s.Arenas.GetByID(ctx, arenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return nil, NewBookingError(CodeInvalidFacility, "arena not found")
		}
		return nil, fmt.Errorf("failed to look up arena %s: %w", arenaID, err)
	}
	if arena.PricePerHour <= 0 {
		return nil, NewBookingError(CodeInvalidFacility, "arena has no valid hourly price")
	}

	currency := arena.Currency
	if currency == "" {
		currency = "usd"
	}

	totalHours := interval.Hours()
	now := s.now()
	order := &models.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		ArenaID:    arenaID,
		StartTime:  interval.Start,
		EndTime:    interval.End,
		TotalHours: totalHours,
		Amount:     ReservationAmount(totalHours, arena.PricePerHour),
		Currency:   currency,
		Status:     models.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	sess, err := s.Gateway.CreateSession(ctx, order, arena.Name)
	if err != nil {
		// The pending order is left for the provider's expiry path; local
		// cleanup here would race the webhook.
		logger.Error("Checkout session creation failed; reservation left pending",
			zap.String("orderID", order.ID), zap.Error(err))
		return nil, NewBookingError(CodePaymentGateway, "payment gateway unavailable")
	}

	if err := s.Orders.SetCheckoutSession(ctx, order.ID, sess.ID, sess.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to record checkout session: %w", err)
	}

	logger.Info("Reservation created",
		zap.String("orderID", order.ID),
		zap.String("arenaID", arenaID),
		zap.Int("totalHours", totalHours),
		zap.Int64("amount", order.Amount))

	return &models.CheckoutInfo{
		ReservationID: order.ID,
		SessionID:     sess.ID,
		CheckoutURL:   sess.URL,
	}, nil
}
