package tasks

import (
	"context"
	"fmt"

	"arenabook/config"

	"github.com/hibiken/asynq"
)

// Enqueuer puts outbound notification tasks on the queue. Kept as an interface
// so callers can run without a queue (nil) and tests can capture enqueues.
type Enqueuer interface {
	EnqueueBookingConfirmation(ctx context.Context, payload BookingConfirmationPayload) error
}

// AsynqEnqueuer is the production Enqueuer backed by an asynq client.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer constructs an enqueuer using the mail queue Redis DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	return &AsynqEnqueuer{client: client}
}

// EnqueueBookingConfirmation schedules a booking confirmation email.
func (e *AsynqEnqueuer) EnqueueBookingConfirmation(ctx context.Context, payload BookingConfirmationPayload) error {
	task, opts, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build booking confirmation task: %w", err)
	}
	if _, err := e.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}
