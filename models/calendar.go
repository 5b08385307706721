package models

// AvailableSlot is a bookable interval within a day.
type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// DayAvailability lists the open slots for a calendar date.
type DayAvailability struct {
	Date           string          `json:"date"`
	AvailableSlots []AvailableSlot `json:"available_slots"`
}

// Availability is the calendar backend's availability response.
type Availability struct {
	Dates []DayAvailability `json:"dates"`
}

// Appointment is the booking request sent to the calendar backend.
type Appointment struct {
	AppointmentType string  `json:"appointment_type"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	Patient         Patient `json:"patient"`
	Reason          string  `json:"reason"`
}

// BookingConfirmation is the calendar backend's booking response.
type BookingConfirmation struct {
	BookingID        string `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
	Status           string `json:"status"`
}

// CancelConfirmation is the calendar backend's cancellation response.
type CancelConfirmation struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// RescheduleConfirmation is the calendar backend's reschedule response.
type RescheduleConfirmation struct {
	BookingID        string `json:"booking_id"`
	NewDate          string `json:"new_date"`
	NewStartTime     string `json:"new_start_time"`
	ConfirmationCode string `json:"confirmation_code"`
	Status           string `json:"status"`
}
