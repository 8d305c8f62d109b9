package handlers

import (
	"net/http"
	"time"

	"arenabook/middleware"
	"arenabook/models"
	"arenabook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation engine over HTTP.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// GetAvailability returns the intervals blocked by paid reservations.
// GET /api/availability?arena_id=...
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	arenaID := c.Query("arena_id")
	if arenaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arena_id required"})
		return
	}

	intervals, err := h.svc.ListBookedIntervals(c.Request.Context(), arenaID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"intervals": intervals})
}

// BuildSelection validates adding or toggling a candidate slot against the
// caller's in-progress selection.
// POST /api/bookings/selection
func (h *BookingHandler) BuildSelection(c *gin.Context) {
	var input struct {
		ArenaID   string        `json:"arena_id"`
		Current   []models.Slot `json:"current"`
		Candidate models.Slot   `json:"candidate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ArenaID == "" || input.Candidate.Start.IsZero() || input.Candidate.End.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arena_id and candidate slot are required"})
		return
	}

	selection, err := h.svc.BuildSelection(c.Request.Context(), input.ArenaID, input.Current, input.Candidate)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": selection})
}

// CreateReservation creates a pending reservation and returns the hosted
// checkout URL.
// POST /api/reservations
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		ArenaID    string    `json:"arena_id"`
		StartTime  time.Time `json:"start_time"`
		EndTime    time.Time `json:"end_time"`
		TotalHours int       `json:"total_hours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ArenaID == "" || input.StartTime.IsZero() || input.EndTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arena_id, start_time and end_time are required"})
		return
	}

	slots := hourlySlots(input.StartTime, input.EndTime)
	if len(slots) == 0 || input.TotalHours != len(slots) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total_hours does not match the requested interval"})
		return
	}

	info, err := h.svc.CreateReservation(c.Request.Context(), userID, input.ArenaID, slots)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation_id": info.ReservationID,
		"session_id":     info.SessionID,
		"checkout_url":   info.CheckoutURL,
	})
}

// CancelReservation releases a paid reservation. Without a body the caller
// must own the booking; with arena_id set the caller must manage the arena.
// DELETE /api/reservations/:id
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	orderID := c.Param("id")

	var input struct {
		ArenaID string `json:"arena_id"`
	}
	// Body is optional for the owner path.
	_ = c.ShouldBindJSON(&input)

	var err error
	if input.ArenaID != "" {
		err = h.svc.CancelByManager(c.Request.Context(), userID, orderID, input.ArenaID)
	} else {
		err = h.svc.CancelByOwner(c.Request.Context(), userID, orderID)
	}
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

// GetUserBookings lists the caller's paid bookings.
// GET /api/bookings/user
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, err := h.svc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetArenaBookings lists an arena's paid bookings for its manager.
// GET /api/arenas/:id/bookings
func (h *BookingHandler) GetArenaBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	arenaID := c.Param("id")

	report, err := h.svc.ListArenaBookings(c.Request.Context(), userID, arenaID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// hourlySlots expands [start, end) into consecutive one-hour slots. Returns
// nil when the interval is not a positive whole number of hours.
func hourlySlots(start, end time.Time) []models.Slot {
	if !end.After(start) {
		return nil
	}
	d := end.Sub(start)
	if d%time.Hour != 0 {
		return nil
	}
	slots := make([]models.Slot, 0, int(d/time.Hour))
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		slots = append(slots, models.Slot{Start: t, End: t.Add(time.Hour)})
	}
	return slots
}

// respondBookingError maps a service error onto an HTTP status and body.
func respondBookingError(c *gin.Context, err error) {
	if be, ok := booking.AsBookingError(err); ok {
		switch be.Code {
		case booking.CodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": be.Message})
		case booking.CodeForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": be.Message})
		case booking.CodeSlotUnavailable, booking.CodeNonConsecutiveSlot:
			c.JSON(http.StatusConflict, gin.H{"error": be.Message, "code": be.Code})
		case booking.CodeTooLateToCancel:
			c.JSON(http.StatusBadRequest, gin.H{
				"error":          be.Message,
				"hoursRemaining": be.HoursRemaining,
			})
		case booking.CodePaymentGateway:
			c.JSON(http.StatusBadGateway, gin.H{"error": be.Message})
		case booking.CodePastSlot, booking.CodeInvalidSlots, booking.CodeInvalidFacility,
			booking.CodeInvalidSignature, booking.CodeMissingCorrelation:
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Message, "code": be.Code})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Message, "code": be.Code})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
