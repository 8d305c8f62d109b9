package booking

import (
	"context"
	"errors"
	"fmt"

	arenaRepo "arenabook/database/repository/arena"
)

// ListUserBookings returns the user's paid bookings, each joined with its
// arena name.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]UserBooking, error) {
	orders, err := s.Orders.ListPaidByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}

	names := make(map[string]string)
	bookings := make([]UserBooking, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.ArenaID]
		if !ok {
			if arena, err := s.Arenas.GetByID(ctx, o.ArenaID); err == nil {
				name = arena.Name
			} else {
				name = "Unknown Arena"
			}
			names[o.ArenaID] = name
		}
		bookings = append(bookings, UserBooking{Order: o, ArenaName: name})
	}
	return bookings, nil
}

// ListArenaBookings returns an arena's paid bookings with earnings totals.
// Only the arena's manager may see them.
func (s *DefaultBookingService) ListArenaBookings(ctx context.Context, userID, arenaID string) (*ArenaBookingsReport, error) {
	arena, err := s.Arenas.GetByID(ctx, arenaID)
	if err != nil {
		if errors.Is(err, arenaRepo.ErrNotFound) {
			return nil, NewBookingError(CodeNotFound, "arena not found")
		}
		return nil, fmt.Errorf("failed to look up arena %s: %w", arenaID, err)
	}
	if arena.CreatedBy != userID {
		return nil, NewBookingError(CodeForbidden, "you are not the manager of this arena")
	}

	orders, err := s.Orders.ListPaidByArena(ctx, arenaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for arena %s: %w", arenaID, err)
	}

	report := &ArenaBookingsReport{
		ArenaID:       arenaID,
		ArenaName:     arena.Name,
		Bookings:      orders,
		TotalBookings: len(orders),
	}
	for _, o := range orders {
		report.TotalEarnings += o.Amount
	}
	return report, nil
}
