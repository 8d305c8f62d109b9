package notification

import (
	"context"

	"arenabook/services/tasks"
)

// Mailer sends outbound booking emails. Delivery is best-effort; the booking
// flow never depends on it.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, payload tasks.BookingConfirmationPayload) error
}
