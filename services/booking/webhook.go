package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	orderRepo "arenabook/database/repository/order"
	"arenabook/models"
	"arenabook/services/tasks"
	"arenabook/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// EventVerifier authenticates a raw webhook delivery against the shared
// endpoint secret.
type EventVerifier interface {
	Verify(payload []byte, sigHeader string) (stripe.Event, error)
}

// StripeEventVerifier verifies Stripe webhook signatures.
type StripeEventVerifier struct {
	Secret string
}

func (v *StripeEventVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, v.Secret)
}

// HandleStripeEvent consumes one webhook delivery. Providers redeliver events
// at least once and in no particular order, so every branch is a status-guarded
// write: re-applying the same completed event is a no-op, and an expired event
// arriving after a completed one leaves the paid order untouched.
func (s *DefaultBookingService) HandleStripeEvent(ctx context.Context, payload []byte, sigHeader string) error {
	logger := utils.GetLogger()

	event, err := s.Verifier.Verify(payload, sigHeader)
	if err != nil {
		return NewBookingError(CodeInvalidSignature, "webhook signature verification failed")
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.finalizePayment(ctx, event)
	case "checkout.session.expired":
		return s.expireSession(ctx, event)
	default:
		// Intentionally ignored event types are still acknowledged so the
		// provider stops redelivering them.
		logger.Debug("Ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}
}

func (s *DefaultBookingService) finalizePayment(ctx context.Context, event stripe.Event) error {
	logger := utils.GetLogger()

	sess, orderID, err := decodeCheckoutSession(event)
	if err != nil {
		return err
	}

	paymentIntentID := ""
	if sess.PaymentIntent != nil {
		paymentIntentID = sess.PaymentIntent.ID
	}

	order, applied, err := s.Orders.MarkPaid(ctx, orderID, paymentIntentID, s.now())
	if err != nil {
		if errors.Is(err, orderRepo.ErrNotFound) {
			return fmt.Errorf("completed event references unknown order %s: %w", orderID, err)
		}
		return fmt.Errorf("failed to finalize payment for order %s: %w", orderID, err)
	}

	if order.Status == models.OrderStatusRejected {
		// Confirmation-race loser: the charge went through but another paid
		// order claimed an overlapping interval first. Needs a refund.
		logger.Error("Payment completed for an interval that is no longer free; refund required",
			zap.String("orderID", order.ID),
			zap.String("arenaID", order.ArenaID),
			zap.String("paymentIntentID", paymentIntentID))
		return nil
	}

	if !applied {
		logger.Info("Duplicate completed event acknowledged", zap.String("orderID", order.ID))
		return nil
	}

	logger.Info("Order finalized", zap.String("orderID", order.ID))
	s.invalidateAvailability(ctx, order.ArenaID)
	s.sendConfirmation(ctx, order, sess)
	return nil
}

func (s *DefaultBookingService) expireSession(ctx context.Context, event stripe.Event) error {
	logger := utils.GetLogger()

	_, orderID, err := decodeCheckoutSession(event)
	if err != nil {
		// Sessions created out of band carry no correlation id; nothing to
		// expire, acknowledge and move on.
		var be *BookingError
		if errors.As(err, &be) && be.Code == CodeMissingCorrelation {
			return nil
		}
		return err
	}

	applied, err := s.Orders.MarkExpired(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to expire order %s: %w", orderID, err)
	}
	if applied {
		logger.Info("Order expired", zap.String("orderID", orderID))
	}
	return nil
}

// sendConfirmation enqueues the confirmation email. Fire-and-forget: the
// booking does not depend on delivery.
func (s *DefaultBookingService) sendConfirmation(ctx context.Context, order *models.Order, sess stripe.CheckoutSession) {
	if s.Mail == nil {
		return
	}
	logger := utils.GetLogger()

	email := ""
	if sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}
	if email == "" {
		logger.Warn("No customer email on checkout session; skipping confirmation",
			zap.String("orderID", order.ID))
		return
	}

	arenaName := ""
	if arena, err := s.Arenas.GetByID(ctx, order.ArenaID); err == nil {
		arenaName = arena.Name
	}

	payload := tasks.BookingConfirmationPayload{
		Email:     email,
		ArenaName: arenaName,
		OrderID:   order.ID,
		StartTime: order.StartTime,
		EndTime:   order.EndTime,
		Hours:     order.TotalHours,
		Amount:    order.Amount,
		Currency:  order.Currency,
	}
	if err := s.Mail.EnqueueBookingConfirmation(ctx, payload); err != nil {
		logger.Warn("Failed to enqueue booking confirmation email",
			zap.String("orderID", order.ID), zap.Error(err))
	}
}

func decodeCheckoutSession(event stripe.Event) (stripe.CheckoutSession, string, error) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return sess, "", fmt.Errorf("failed to decode checkout session payload: %w", err)
	}
	orderID := sess.Metadata["order_id"]
	if orderID == "" {
		return sess, "", NewBookingError(CodeMissingCorrelation, "order_id missing in session metadata")
	}
	return sess, orderID, nil
}
