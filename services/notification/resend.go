package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arenabook/config"
	"arenabook/services/tasks"
	"arenabook/utils"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer delivers email through the Resend HTTP API.
type ResendMailer struct {
	apiKey string
	from   string
	client *http.Client
}

// NewResendMailer constructs a ResendMailer from the application config.
func NewResendMailer() *ResendMailer {
	return &ResendMailer{
		apiKey: config.AppConfig.ResendAPIKey,
		from:   config.AppConfig.MailFrom,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendBookingConfirmation emails the payer a summary of the confirmed booking.
func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, payload tasks.BookingConfirmationPayload) error {
	body := resendRequest{
		From:    m.from,
		To:      payload.Email,
		Subject: "Booking Confirmed - " + payload.ArenaName,
		HTML:    confirmationHTML(payload),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	utils.GetLogger().Info("Booking confirmation sent",
		zap.String("orderID", payload.OrderID),
		zap.String("to", payload.Email))
	return nil
}

func confirmationHTML(p tasks.BookingConfirmationPayload) string {
	return fmt.Sprintf(
		`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>Booking Confirmed</h1>
  <p><strong>Facility:</strong> %s</p>
  <p><strong>Date:</strong> %s</p>
  <p><strong>Time:</strong> %s to %s</p>
  <p><strong>Duration:</strong> %d hour(s)</p>
  <p><strong>Amount:</strong> %.2f %s</p>
  <p>Booking reference: %s</p>
</div>`,
		p.ArenaName,
		p.StartTime.Format("Mon, Jan 2 2006"),
		p.StartTime.Format("15:04"),
		p.EndTime.Format("15:04"),
		p.Hours,
		float64(p.Amount)/100,
		p.Currency,
		p.OrderID,
	)
}
