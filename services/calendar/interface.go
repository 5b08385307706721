package calendar

import (
	"context"
	"errors"

	"clinicflow/models"
)

// ErrUnavailable is returned for every calendar backend failure:
// timeouts, non-2xx statuses, and malformed payloads alike. Flow engines
// treat them uniformly; no retries are attempted here.
var ErrUnavailable = errors.New("scheduling service unavailable")

// CalendarClient abstracts the external scheduling backend.
type CalendarClient interface {
	Availability(ctx context.Context, appointmentType string) (*models.Availability, error)
	Book(ctx context.Context, appt models.Appointment) (*models.BookingConfirmation, error)
	Cancel(ctx context.Context, bookingID, email string) (*models.CancelConfirmation, error)
	Reschedule(ctx context.Context, bookingID, newDate, newStartTime string) (*models.RescheduleConfirmation, error)
}
