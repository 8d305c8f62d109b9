package booking

import (
	"time"

	arenaRepo "arenabook/database/repository/arena"
	orderRepo "arenabook/database/repository/order"
	"arenabook/services/tasks"

	"github.com/go-redis/redis/v8"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Arenas   arenaRepo.ArenaRepository
	Orders   orderRepo.OrderRepository
	Gateway  CheckoutGateway
	Verifier EventVerifier
	// Cache holds booked-interval sets per arena. A nil client disables
	// caching and every query goes to the store.
	Cache *redis.Client
	// Mail enqueues confirmation emails. Nil disables notifications; delivery
	// failures never affect the booking flow.
	Mail tasks.Enqueuer
	// Now is the authoritative clock for past-slot and cancellation-window
	// checks. Client-supplied timestamps are never trusted for either.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
