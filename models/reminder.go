package models

// ReminderPayload is the task payload for appointment reminders.
type ReminderPayload struct {
	BookingID string  `json:"bookingId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Patient   Patient `json:"patient"`
}
