package booking

import "math"

// ReservationAmount computes the amount charged for a reservation in minor
// currency units: totalHours x pricePerHour x 100. The flat hourly rate comes
// from the arena record; the result is fixed on the order at creation and
// never recomputed.
func ReservationAmount(totalHours int, pricePerHour float64) int64 {
	perHourMinor := int64(math.Round(pricePerHour * 100))
	return int64(totalHours) * perHourMinor
}
