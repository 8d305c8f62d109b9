package booking

import (
	"context"

	"arenabook/models"
)

// BookingService is the reservation and order-lifecycle engine: availability
// queries, slot-selection validation, reservation creation, payment webhook
// finalization and cancellation.
type BookingService interface {
	// ListBookedIntervals returns the intervals occupied by paid reservations
	// for an arena. Pending, expired, cancelled and rejected orders do not
	// block the calendar.
	ListBookedIntervals(ctx context.Context, arenaID string) ([]models.Slot, error)
	// BuildSelection validates adding (or toggling off) a candidate slot
	// against the arena's booked intervals and the caller's current selection.
	BuildSelection(ctx context.Context, arenaID string, current []models.Slot, candidate models.Slot) ([]models.Slot, error)
	// CreateReservation creates a pending order for the selected slots and
	// requests a hosted checkout session.
	CreateReservation(ctx context.Context, userID, arenaID string, slots []models.Slot) (*models.CheckoutInfo, error)
	// HandleStripeEvent consumes a signed payment-provider webhook delivery.
	HandleStripeEvent(ctx context.Context, payload []byte, sigHeader string) error
	// CancelByOwner releases a paid reservation on behalf of its owner.
	CancelByOwner(ctx context.Context, userID, orderID string) error
	// CancelByManager releases a paid reservation on behalf of the arena's
	// manager.
	CancelByManager(ctx context.Context, userID, orderID, arenaID string) error
	// ListUserBookings returns the caller's paid bookings with arena names.
	ListUserBookings(ctx context.Context, userID string) ([]UserBooking, error)
	// ListArenaBookings returns an arena's paid bookings with earnings totals.
	// Only the arena's manager may call it.
	ListArenaBookings(ctx context.Context, userID, arenaID string) (*ArenaBookingsReport, error)
}

// UserBooking is a paid order joined with its arena name.
type UserBooking struct {
	models.Order
	ArenaName string `json:"arena_name"`
}

// ArenaBookingsReport lists an arena's paid bookings with aggregate totals.
type ArenaBookingsReport struct {
	ArenaID       string         `json:"arena_id"`
	ArenaName     string         `json:"arena_name"`
	Bookings      []models.Order `json:"bookings"`
	TotalBookings int            `json:"totalBookings"`
	TotalEarnings int64          `json:"totalEarnings"`
}
