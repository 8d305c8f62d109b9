package booking

import (
	"testing"
	"time"

	"arenabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBookingCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	be, ok := AsBookingError(err)
	require.True(t, ok, "expected a BookingError, got %v", err)
	assert.Equal(t, code, be.Code)
}

func TestApplySlotSelectionRejectsPastSlot(t *testing.T) {
	// testNow is 14:30, so the earliest bookable slot starts at 15:00.
	currentHour := testNow.Truncate(time.Hour)

	cases := []struct {
		name  string
		start time.Time
	}{
		{"yesterday", currentHour.Add(-24 * time.Hour)},
		{"one hour ago", currentHour.Add(-time.Hour)},
		{"the hour in progress", currentHour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplySlotSelection(nil, nil, slotAt(tc.start, 1), testNow)
			assertBookingCode(t, err, CodePastSlot)
		})
	}

	// The next full hour is bookable even though the clock reads 14:30.
	got, err := ApplySlotSelection(nil, nil, slotAt(currentHour.Add(time.Hour), 1), testNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestApplySlotSelectionRejectsBookedOverlap(t *testing.T) {
	start := testNow.Truncate(time.Hour).Add(3 * time.Hour)
	booked := []models.Slot{slotAt(start, 2)}

	_, err := ApplySlotSelection(booked, nil, slotAt(start, 1), testNow)
	assertBookingCode(t, err, CodeSlotUnavailable)

	_, err = ApplySlotSelection(booked, nil, slotAt(start.Add(time.Hour), 1), testNow)
	assertBookingCode(t, err, CodeSlotUnavailable)

	// Adjacency is not an overlap: the slot right after the booked block is free.
	got, err := ApplySlotSelection(booked, nil, slotAt(start.Add(2*time.Hour), 1), testNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestApplySlotSelectionToggleOff(t *testing.T) {
	base := testNow.Truncate(time.Hour).Add(2 * time.Hour)
	current := []models.Slot{slotAt(base, 1), slotAt(base.Add(time.Hour), 1), slotAt(base.Add(2*time.Hour), 1)}

	// Removing the last slot keeps the remainder contiguous.
	got, err := ApplySlotSelection(nil, current, slotAt(base.Add(2*time.Hour), 1), testNow)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{current[0], current[1]}, got)

	// Toggling the same slot back on restores the selection.
	restored, err := ApplySlotSelection(nil, got, slotAt(base.Add(2*time.Hour), 1), testNow)
	require.NoError(t, err)
	assert.Equal(t, current, restored)
}

func TestApplySlotSelectionEnforcesContiguity(t *testing.T) {
	base := testNow.Truncate(time.Hour).Add(2 * time.Hour)
	current := []models.Slot{slotAt(base, 1)}

	_, err := ApplySlotSelection(nil, current, slotAt(base.Add(3*time.Hour), 1), testNow)
	assertBookingCode(t, err, CodeNonConsecutiveSlot)

	// Extending at either edge is allowed and the result stays sorted.
	got, err := ApplySlotSelection(nil, current, slotAt(base.Add(time.Hour), 1), testNow)
	require.NoError(t, err)
	got, err = ApplySlotSelection(nil, got, slotAt(base.Add(-time.Hour), 1), testNow)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Start.Equal(base.Add(-time.Hour)))
	assert.True(t, got[2].End.Equal(base.Add(2*time.Hour)))
}

func TestApplySlotSelectionEmptySelectionAcceptsAnyFreeSlot(t *testing.T) {
	start := testNow.Truncate(time.Hour).Add(5 * time.Hour)
	got, err := ApplySlotSelection(nil, nil, slotAt(start, 1), testNow)
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{slotAt(start, 1)}, got)
}

func TestValidateContiguousHourlySlots(t *testing.T) {
	base := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

	t.Run("empty selection", func(t *testing.T) {
		_, err := validateContiguousHourlySlots(nil)
		assertBookingCode(t, err, CodeInvalidSlots)
	})

	t.Run("misaligned slot", func(t *testing.T) {
		_, err := validateContiguousHourlySlots([]models.Slot{slotAt(base.Add(15*time.Minute), 1)})
		assertBookingCode(t, err, CodeInvalidSlots)
	})

	t.Run("two hour slot", func(t *testing.T) {
		_, err := validateContiguousHourlySlots([]models.Slot{slotAt(base, 2)})
		assertBookingCode(t, err, CodeInvalidSlots)
	})

	t.Run("gap in the run", func(t *testing.T) {
		_, err := validateContiguousHourlySlots([]models.Slot{slotAt(base, 1), slotAt(base.Add(2*time.Hour), 1)})
		assertBookingCode(t, err, CodeInvalidSlots)
	})

	t.Run("unsorted input is normalized", func(t *testing.T) {
		interval, err := validateContiguousHourlySlots([]models.Slot{
			slotAt(base.Add(2*time.Hour), 1),
			slotAt(base, 1),
			slotAt(base.Add(time.Hour), 1),
		})
		require.NoError(t, err)
		assert.True(t, interval.Start.Equal(base))
		assert.True(t, interval.End.Equal(base.Add(3*time.Hour)))
		assert.Equal(t, 3, interval.Hours())
	})
}
