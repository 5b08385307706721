package agent

import (
	"context"
	"errors"

	"clinicflow/models"
)

var errFakeDown = errors.New("fake calendar down")

// fakeCalendar lets each test plug in just the calls it expects; the
// rest fail loudly.
type fakeCalendar struct {
	availability func(ctx context.Context, appointmentType string) (*models.Availability, error)
	book         func(ctx context.Context, appt models.Appointment) (*models.BookingConfirmation, error)
	cancel       func(ctx context.Context, bookingID, email string) (*models.CancelConfirmation, error)
	reschedule   func(ctx context.Context, bookingID, newDate, newStartTime string) (*models.RescheduleConfirmation, error)
}

func (f *fakeCalendar) Availability(ctx context.Context, appointmentType string) (*models.Availability, error) {
	if f.availability == nil {
		return nil, errFakeDown
	}
	return f.availability(ctx, appointmentType)
}

func (f *fakeCalendar) Book(ctx context.Context, appt models.Appointment) (*models.BookingConfirmation, error) {
	if f.book == nil {
		return nil, errFakeDown
	}
	return f.book(ctx, appt)
}

func (f *fakeCalendar) Cancel(ctx context.Context, bookingID, email string) (*models.CancelConfirmation, error) {
	if f.cancel == nil {
		return nil, errFakeDown
	}
	return f.cancel(ctx, bookingID, email)
}

func (f *fakeCalendar) Reschedule(ctx context.Context, bookingID, newDate, newStartTime string) (*models.RescheduleConfirmation, error) {
	if f.reschedule == nil {
		return nil, errFakeDown
	}
	return f.reschedule(ctx, bookingID, newDate, newStartTime)
}

type stubFAQ struct {
	reply string
}

func (s *stubFAQ) Answer(ctx context.Context, query string) string {
	return s.reply
}

// reminderRecorder captures scheduled reminders.
type reminderRecorder struct {
	payloads []models.ReminderPayload
	err      error
}

func (r *reminderRecorder) ScheduleBookingReminder(payload models.ReminderPayload) error {
	r.payloads = append(r.payloads, payload)
	return r.err
}

func twoDayAvailability() *models.Availability {
	return &models.Availability{
		Dates: []models.DayAvailability{
			{
				Date: "2024-01-17",
				AvailableSlots: []models.AvailableSlot{
					{StartTime: "09:00", EndTime: "09:30", Available: true},
					{StartTime: "10:30", EndTime: "11:00", Available: true},
					{StartTime: "15:30", EndTime: "16:00", Available: true},
				},
			},
			{
				Date: "2024-01-18",
				AvailableSlots: []models.AvailableSlot{
					{StartTime: "09:00", EndTime: "09:30", Available: true},
					{StartTime: "14:00", EndTime: "14:30", Available: true},
				},
			},
		},
	}
}
