package tasks

import (
	"encoding/json"
	"time"

	"clinicflow/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderScheduler enqueues appointment reminders after a booking is
// confirmed.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload) error
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks so they fire LeadTime
// before the appointment starts.
type AsynqReminderScheduler struct {
	Client   *asynq.Client
	LeadTime time.Duration
}

func (s *AsynqReminderScheduler) ScheduleBookingReminder(payload models.ReminderPayload) error {
	fireAt := time.Now()
	if t, err := time.ParseInLocation("2006-01-02 15:04", payload.Date+" "+payload.StartTime, time.Local); err == nil {
		if lead := t.Add(-s.LeadTime); lead.After(fireAt) {
			fireAt = lead
		}
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
