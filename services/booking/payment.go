package booking

import (
	"context"
	"fmt"
	"time"

	"arenabook/config"
	"arenabook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// checkoutSessionTTL is the lifetime of a hosted checkout session. An unpaid
// session past this deadline is reclaimed by the provider's expiry event.
const checkoutSessionTTL = 30 * time.Minute

// CheckoutSession is the subset of the hosted payment session the core keeps.
type CheckoutSession struct {
	ID        string
	URL       string
	ExpiresAt time.Time
}

// CheckoutGateway creates hosted checkout sessions with the payment provider.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, order *models.Order, arenaName string) (*CheckoutSession, error)
}

// StripeCheckoutGateway is the production CheckoutGateway backed by Stripe
// hosted checkout.
type StripeCheckoutGateway struct {
	logger *zap.Logger
}

// NewStripeCheckoutGateway constructs a StripeCheckoutGateway.
func NewStripeCheckoutGateway(logger *zap.Logger) *StripeCheckoutGateway {
	return &StripeCheckoutGateway{logger: logger}
}

// CreateSession requests a card checkout session for the order. The order id
// travels in the session metadata so webhook events can be correlated back.
func (g *StripeCheckoutGateway) CreateSession(ctx context.Context, order *models.Order, arenaName string) (*CheckoutSession, error) {
	expiresAt := time.Now().UTC().Add(checkoutSessionTTL)

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(order.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Arena Booking: " + arenaName),
					},
					UnitAmount: stripe.Int64(order.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(config.AppConfig.BaseURL + "/success"),
		CancelURL:  stripe.String(config.AppConfig.BaseURL + "/cancel"),
		ExpiresAt:  stripe.Int64(expiresAt.Unix()),
	}
	params.Context = ctx
	params.AddMetadata("order_id", order.ID)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session creation failed: %w", err)
	}

	g.logger.Info("Checkout session created",
		zap.String("orderID", order.ID),
		zap.String("sessionID", sess.ID))

	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		ExpiresAt: time.Unix(sess.ExpiresAt, 0).UTC(),
	}, nil
}
