package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jojocolaresbeauty/config"
	appointmentRepo "jojocolaresbeauty/database/repository/appointment"
	"jojocolaresbeauty/models"
	"jojocolaresbeauty/services/notification"
	"jojocolaresbeauty/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotifyWorker runs the async dispatch worker in background. Delivery is
// best effort: a permanently failing task is dropped after asynq's retries and
// only logged, never surfaced to the booking flow.
func InitNotifyWorker(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotifySend, handleNotifyTask(notifSvc))
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc, apptRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyHandler] Invalid payload: %v", err)
			return err
		}

		var err error
		switch p.Kind {
		case models.NotifyKindMessage:
			err = notifSvc.SendMessage(ctx, p.Number, p.Message, p.Footer)
		case models.NotifyKindVCard:
			err = notifSvc.SendVCard(ctx, p.Number, p.Name, p.Phone)
		default:
			log.Printf("[NotifyHandler] Unknown notification kind: %s", p.Kind)
			return nil
		}

		if err != nil {
			log.Printf("[NotifyHandler] Failed to send notification to %s: %v", p.Number, err)
		}
		return err
	}
}

func handleReminderTask(notifSvc notification.NotificationService, apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] Appointment %s not found: %v", p.AppointmentID, err)
			return nil
		}
		if appt.Status != models.StatusConfirmed {
			return nil
		}

		number := notification.NormalizePhone(appt.Phone, config.AppConfig.PhoneCountryCode)
		message := fmt.Sprintf(
			"Olá %s! Lembrete do seu agendamento amanhã, dia %s às %s. Até lá!",
			appt.ClientName, appt.Date, appt.Time,
		)
		if err := notifSvc.SendMessage(ctx, number, message, "Sistema de Agendamento"); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder for %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
