package booking

import (
	"context"
	"testing"
	"time"

	"arenabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUserBookingsJoinsArenaNames(t *testing.T) {
	start := testNow.Add(48 * time.Hour)
	paid := &models.Order{
		ID: "o-1", UserID: "user-1", ArenaID: "arena-1",
		StartTime: start, EndTime: start.Add(time.Hour),
		Amount: 1000, Status: models.OrderStatusPaid,
	}
	orphan := &models.Order{
		ID: "o-2", UserID: "user-1", ArenaID: "arena-deleted",
		StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour),
		Amount: 1500, Status: models.OrderStatusPaid,
	}
	cancelled := &models.Order{
		ID: "o-3", UserID: "user-1", ArenaID: "arena-1",
		StartTime: start.Add(4 * time.Hour), EndTime: start.Add(5 * time.Hour),
		Amount: 1000, Status: models.OrderStatusCancelled,
	}

	svc := newTestService(newFakeArenaRepo(testArena()), newFakeOrderRepo(paid, orphan, cancelled))

	bookings, err := svc.ListUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "o-1", bookings[0].ID)
	assert.Equal(t, "Riverside Court", bookings[0].ArenaName)
	assert.Equal(t, "o-2", bookings[1].ID)
	assert.Equal(t, "Unknown Arena", bookings[1].ArenaName)
}

func TestListArenaBookingsAggregatesEarnings(t *testing.T) {
	start := testNow.Add(48 * time.Hour)
	first := &models.Order{
		ID: "o-1", UserID: "user-1", ArenaID: "arena-1",
		StartTime: start, EndTime: start.Add(2 * time.Hour),
		Amount: 2000, Status: models.OrderStatusPaid,
	}
	second := &models.Order{
		ID: "o-2", UserID: "user-2", ArenaID: "arena-1",
		StartTime: start.Add(3 * time.Hour), EndTime: start.Add(4 * time.Hour),
		Amount: 1000, Status: models.OrderStatusPaid,
	}

	svc := newTestService(newFakeArenaRepo(testArena()), newFakeOrderRepo(first, second))

	report, err := svc.ListArenaBookings(context.Background(), "manager-1", "arena-1")
	require.NoError(t, err)
	assert.Equal(t, "arena-1", report.ArenaID)
	assert.Equal(t, "Riverside Court", report.ArenaName)
	assert.Equal(t, 2, report.TotalBookings)
	assert.Equal(t, int64(3000), report.TotalEarnings)
	require.Len(t, report.Bookings, 2)
	assert.Equal(t, "o-1", report.Bookings[0].ID)
}

func TestListArenaBookingsRequiresManager(t *testing.T) {
	svc := newTestService(newFakeArenaRepo(testArena()), newFakeOrderRepo())

	_, err := svc.ListArenaBookings(context.Background(), "user-1", "arena-1")
	assertBookingCode(t, err, CodeForbidden)

	_, err = svc.ListArenaBookings(context.Background(), "manager-1", "no-such-arena")
	assertBookingCode(t, err, CodeNotFound)
}
