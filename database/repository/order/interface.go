package orderRepo

import (
	"context"
	"time"

	"arenabook/models"
)

// OrderRepository defines data access for reservation orders.
type OrderRepository interface {
	// Create persists a new order document.
	Create(ctx context.Context, order *models.Order) error
	// GetByID retrieves an order by its unique ID. Returns ErrNotFound when no
	// document matches.
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	// SetCheckoutSession records the hosted checkout session on a pending order.
	SetCheckoutSession(ctx context.Context, orderID, sessionID string, expiresAt time.Time) error
	// ListPaidByArena returns all paid orders for an arena.
	ListPaidByArena(ctx context.Context, arenaID string) ([]models.Order, error)
	// ListPaidByUser returns all paid orders belonging to a user.
	ListPaidByUser(ctx context.Context, userID string) ([]models.Order, error)
	// MarkPaid performs the conditional pending-to-paid transition. Inside a
	// single transaction it re-checks that no other paid order overlaps the
	// interval; the loser of a confirmation race is moved to the terminal
	// rejected status instead. The returned bool reports whether this call
	// changed state (false for the idempotent redelivery no-op).
	MarkPaid(ctx context.Context, orderID, paymentIntentID string, paidAt time.Time) (*models.Order, bool, error)
	// MarkExpired moves a still-pending order to expired. Orders in any other
	// status are left untouched and the call reports false.
	MarkExpired(ctx context.Context, orderID string) (bool, error)
	// MarkCancelled moves a paid order to cancelled.
	MarkCancelled(ctx context.Context, orderID string) error
}
