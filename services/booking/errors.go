package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to API callers.
const (
	CodePastSlot           = "pastSlot"
	CodeSlotUnavailable    = "slotUnavailable"
	CodeNonConsecutiveSlot = "nonConsecutiveSlot"
	CodeInvalidSlots       = "invalidSlots"
	CodeInvalidFacility    = "invalidFacility"
	CodeNotFound           = "notFound"
	CodeForbidden          = "forbidden"
	CodeTooLateToCancel    = "tooLateToCancel"
	CodePaymentGateway     = "paymentGatewayError"
	CodeInvalidSignature   = "invalidSignature"
	CodeMissingCorrelation = "missingCorrelation"
)

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
	// HoursRemaining is set on tooLateToCancel so the caller can render how far
	// inside the cancellation window the reservation is.
	HoursRemaining float64
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}

// NewTooLateToCancelError reports a cancellation attempt inside the 24h window.
func NewTooLateToCancelError(hoursRemaining float64) error {
	return &BookingError{
		Code:           CodeTooLateToCancel,
		Message:        "cannot cancel booking less than 24 hours before start time",
		HoursRemaining: hoursRemaining,
	}
}

// AsBookingError unwraps err into a *BookingError if it carries one.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
