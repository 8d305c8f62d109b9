package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// BookingConfirmationPayload carries everything the mail worker needs to send
// a confirmation without touching the database.
type BookingConfirmationPayload struct {
	Email     string    `json:"email"`
	ArenaName string    `json:"arenaName"`
	OrderID   string    `json:"orderId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Hours     int       `json:"hours"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
}

func NewBookingConfirmationTask(payload BookingConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
