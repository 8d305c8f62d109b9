package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arenabook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWebhookRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/webhooks/stripe", NewWebhookHandler(svc, zap.NewNop()).HandleStripeWebhook)
	return r
}

func postWebhook(r *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", strings.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookAcknowledgesProcessedEvent(t *testing.T) {
	r := newWebhookRouter(&stubBookingService{})

	w := postWebhook(r, `{"type":"checkout.session.completed"}`, "t=1,v1=sig")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestWebhookRequiresSignatureHeader(t *testing.T) {
	r := newWebhookRouter(&stubBookingService{})
	w := postWebhook(r, `{}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookPermanentFailureIs400(t *testing.T) {
	svc := &stubBookingService{handleErr: booking.NewBookingError(booking.CodeInvalidSignature, "webhook signature verification failed")}
	r := newWebhookRouter(svc)

	// 400 tells the provider not to redeliver.
	w := postWebhook(r, `{}`, "t=1,v1=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookTransientFailureIs500(t *testing.T) {
	svc := &stubBookingService{handleErr: errors.New("mongo timeout")}
	r := newWebhookRouter(svc)

	// 500 asks the provider to retry the delivery.
	w := postWebhook(r, `{}`, "t=1,v1=sig")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
