package tasks

import (
	"encoding/json"
	"time"

	"jojocolaresbeauty/models"

	"github.com/hibiken/asynq"
)

const (
	TypeNotifySend   = "notify:send"
	TypeReminderSend = "reminder:send"
)

// NewNotifyTask wraps a WhatsApp payload for immediate best-effort dispatch.
func NewNotifyTask(payload models.NotifyPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotifySend, b)
	opts := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// NewReminderTask schedules an appointment reminder at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
