package models

import "time"

// Slot is a half-open time interval [Start, End). Candidate slots are exactly
// one hour wide; booked intervals may span several hours.
type Slot struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Hours returns the width of the slot in whole hours.
func (s Slot) Hours() int {
	return int(s.End.Sub(s.Start) / time.Hour)
}

// IsHourAligned reports whether the slot starts on the hour and is exactly one
// hour wide.
func (s Slot) IsHourAligned() bool {
	if !s.Start.Truncate(time.Hour).Equal(s.Start) {
		return false
	}
	return s.End.Sub(s.Start) == time.Hour
}

// Overlaps reports whether the two intervals intersect.
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

// Equal reports whether both endpoints match exactly.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// AdjacentBefore reports whether s ends exactly where other begins.
func (s Slot) AdjacentBefore(other Slot) bool {
	return s.End.Equal(other.Start)
}

// AdjacentAfter reports whether s begins exactly where other ends.
func (s Slot) AdjacentAfter(other Slot) bool {
	return s.Start.Equal(other.End)
}
