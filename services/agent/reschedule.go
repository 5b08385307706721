package agent

import (
	"context"
	"fmt"
	"strings"

	"clinicflow/models"
)

// handleRescheduleFlow runs the two-stage reschedule state machine:
// collect the booking ID, then the new slot.
func (s *DefaultAgentService) handleRescheduleFlow(ctx context.Context, sess *models.Session, message string) string {
	switch sess.Stage {
	case models.StageAskBookingID:
		sess.Collected.BookingID = strings.TrimSpace(message)
		sess.Stage = models.StageAskNewSlotPref
		return "Thanks — what new date/time would you like? (reply with YYYY-MM-DD HH:MM)"

	case models.StageAskNewSlotPref:
		parts := strings.Fields(message)
		if len(parts) < 2 {
			return "Please provide the new date and start time in format YYYY-MM-DD HH:MM"
		}
		newDate, newStart := parts[0], parts[1]

		conf, err := s.Calendar.Reschedule(ctx, sess.Collected.BookingID, newDate, newStart)
		if err != nil {
			logServiceFailure("reschedule", err)
			sess.Stage = models.StageError
			return "Sorry, I couldn't reschedule right now. Please try again later or call the clinic."
		}
		sess.Stage = models.StageDone
		return fmt.Sprintf("Your appointment has been rescheduled to %s at %s. Confirmation: %s",
			conf.NewDate, conf.NewStartTime, conf.ConfirmationCode)

	default:
		// Defensive fallback: re-ask.
		return "Please provide the booking ID (or email) of the appointment you'd like to reschedule."
	}
}
