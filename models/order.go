package models

import "time"

// Order status values. The status only ever moves forward: pending is the
// initial state; expired, cancelled and rejected are terminal; paid is terminal
// with respect to payment but may still move to cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusExpired   = "expired"
	OrderStatusCancelled = "cancelled"
	// OrderStatusRejected marks an order whose payment completed after another
	// paid order had already claimed an overlapping interval. The charge has to
	// be refunded out of band.
	OrderStatusRejected = "rejected"
)

// Order is the persisted reservation record tracking a booking attempt and its
// payment state.
type Order struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	ArenaID          string    `bson:"arena_id" json:"arena_id"`
	StartTime        time.Time `bson:"start_time" json:"start_time"`
	EndTime          time.Time `bson:"end_time" json:"end_time"`
	TotalHours       int       `bson:"total_hours" json:"total_hours"`
	Amount           int64     `bson:"amount" json:"amount"` // minor currency units, fixed at creation
	Currency         string    `bson:"currency" json:"currency"`
	Status           string    `bson:"status" json:"status"`
	PaymentSessionID string    `bson:"payment_session_id,omitempty" json:"payment_session_id,omitempty"`
	PaymentIntentID  string    `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	SessionExpiresAt time.Time `bson:"session_expires_at,omitempty" json:"session_expires_at,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
	PaidAt           time.Time `bson:"paid_at,omitempty" json:"paid_at,omitempty"`
}

// Interval returns the contiguous interval covered by the order.
func (o *Order) Interval() Slot {
	return Slot{Start: o.StartTime, End: o.EndTime}
}

// CheckoutInfo is returned to the caller after a reservation has been created
// and a hosted checkout session requested.
type CheckoutInfo struct {
	ReservationID string `json:"reservation_id"`
	SessionID     string `json:"session_id"`
	CheckoutURL   string `json:"checkout_url"`
}
