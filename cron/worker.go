package cron

import (
	"context"
	"encoding/json"
	"log"

	"arenabook/config"
	"arenabook/services/notification"
	"arenabook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in the background.
func InitMailWorker(mailer notification.Mailer) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleBookingConfirmation(mailer))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[MailWorker] worker stopped: %v", err)
		}
	}()

	return srv
}

func handleBookingConfirmation(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.SendBookingConfirmation(ctx, p); err != nil {
			log.Printf("[MailWorker] failed to send confirmation for order %s: %v", p.OrderID, err)
			return err
		}
		return nil
	}
}
