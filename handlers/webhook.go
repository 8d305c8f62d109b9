package handlers

import (
	"io"
	"net/http"

	"arenabook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBodyBytes bounds what we are willing to read from the provider.
const maxWebhookBodyBytes = 65536

// WebhookHandler receives signed payment-provider events.
type WebhookHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(svc booking.BookingService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, logger: logger}
}

// HandleStripeWebhook verifies and processes one webhook delivery.
// POST /api/webhooks/stripe
//
// Signature failures return 400 so the provider gives up; transient processing
// failures return 500 so the provider retries; everything else is acknowledged
// with {received:true}, including event types we intentionally ignore.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if sigHeader == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing Stripe signature"})
		return
	}

	if err := h.svc.HandleStripeEvent(c.Request.Context(), payload, sigHeader); err != nil {
		if be, ok := booking.AsBookingError(err); ok {
			// Authenticity or correlation failures are permanent: retrying the
			// same delivery cannot succeed.
			h.logger.Warn("Rejecting webhook delivery", zap.String("code", be.Code))
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
			return
		}
		h.logger.Error("Webhook processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
