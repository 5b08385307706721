package agent

import (
	"context"
	"fmt"
	"strings"

	"clinicflow/models"
)

// handleCancelFlow runs the single-stage cancel state machine. The input
// is treated as an email when it contains "@", otherwise as a booking ID.
func (s *DefaultAgentService) handleCancelFlow(ctx context.Context, sess *models.Session, message string) string {
	if sess.Stage != models.StageAskCancelInfo {
		// Defensive fallback: re-ask.
		return "Please provide the booking ID or the email used to book the appointment."
	}

	token := strings.TrimSpace(message)
	var bookingID, email string
	if strings.Contains(token, "@") {
		email = token
	} else {
		bookingID = token
	}

	conf, err := s.Calendar.Cancel(ctx, bookingID, email)
	if err != nil {
		logServiceFailure("cancel", err)
		sess.Stage = models.StageError
		return "Sorry, I couldn't cancel right now. Please try again later or call the clinic."
	}
	sess.Stage = models.StageDone
	return fmt.Sprintf("Your appointment has been cancelled (booking_id=%s).", conf.BookingID)
}
