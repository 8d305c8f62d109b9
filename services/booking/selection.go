package booking

import (
	"sort"
	"time"

	"arenabook/models"
)

// ApplySlotSelection decides whether a candidate one-hour slot may be added to
// (or toggled off) an in-progress selection, and returns the updated selection.
//
// Rules are applied in order: past-slot rejection, overlap with booked
// intervals, toggle-off of an exact match, contiguity with the current
// selection. The current selection is expected sorted by start time and
// contiguous; the result keeps both properties. The function has no hidden
// state, so re-applying it with the same inputs yields the same output.
func ApplySlotSelection(booked, current []models.Slot, candidate models.Slot, now time.Time) ([]models.Slot, error) {
	// The earliest bookable moment is the start of the next full hour. The
	// caller's clock is never consulted.
	nextHour := now.Truncate(time.Hour).Add(time.Hour)
	if candidate.Start.Before(nextHour) {
		return nil, NewBookingError(CodePastSlot, "cannot book a time slot in the past")
	}

	for _, b := range booked {
		if candidate.Overlaps(b) {
			return nil, NewBookingError(CodeSlotUnavailable, "this slot is already booked")
		}
	}

	// Toggle-off: an exact match removes the slot, no further checks apply.
	for i, s := range current {
		if s.Equal(candidate) {
			updated := make([]models.Slot, 0, len(current)-1)
			updated = append(updated, current[:i]...)
			updated = append(updated, current[i+1:]...)
			return updated, nil
		}
	}

	if len(current) > 0 {
		first := current[0]
		last := current[len(current)-1]
		if !candidate.AdjacentBefore(first) && !candidate.AdjacentAfter(last) {
			return nil, NewBookingError(CodeNonConsecutiveSlot, "only consecutive time slots can be selected")
		}
	}

	updated := make([]models.Slot, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, candidate)
	sort.Slice(updated, func(i, j int) bool {
		return updated[i].Start.Before(updated[j].Start)
	})
	return updated, nil
}

// validateContiguousHourlySlots checks that slots form one non-empty run of
// hour-aligned, strictly consecutive one-hour slots, and returns the covered
// interval.
func validateContiguousHourlySlots(slots []models.Slot) (models.Slot, error) {
	if len(slots) == 0 {
		return models.Slot{}, NewBookingError(CodeInvalidSlots, "no slots selected")
	}

	sorted := make([]models.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for i, s := range sorted {
		if !s.IsHourAligned() {
			return models.Slot{}, NewBookingError(CodeInvalidSlots, "slots must be hour-aligned and exactly one hour long")
		}
		if i > 0 && !sorted[i-1].AdjacentBefore(s) {
			return models.Slot{}, NewBookingError(CodeInvalidSlots, "slots must form one consecutive block")
		}
	}

	return models.Slot{Start: sorted[0].Start, End: sorted[len(sorted)-1].End}, nil
}
