package agent

import (
	"context"
	"fmt"
	"strings"

	"clinicflow/models"
	"clinicflow/utils"

	"go.uber.org/zap"
)

const maxSlotSuggestions = 4

var appointmentTypes = map[string]bool{
	"consultation": true,
	"followup":     true,
	"physical":     true,
	"specialist":   true,
}

// handleScheduleFlow advances the schedule state machine by one stage.
// Unparseable input re-prompts without changing stage; calendar failures
// move the flow to its error stage.
func (s *DefaultAgentService) handleScheduleFlow(ctx context.Context, sess *models.Session, message string) string {
	switch sess.Stage {
	case models.StageAskReason:
		sess.Collected.Reason = message
		sess.Stage = models.StageAskType
		return "Thanks. Which type of appointment would you prefer? (consultation|followup|physical|specialist)"

	case models.StageAskType:
		apptType := strings.ToLower(strings.TrimSpace(message))
		if !appointmentTypes[apptType] {
			return "I didn't recognize that type. Please choose: consultation, followup, physical, or specialist."
		}
		sess.Collected.AppointmentType = apptType
		sess.Stage = models.StageAskPref
		return "Do you have a preferred date or 'anytime this week' / 'tomorrow' / 'morning' / 'afternoon'?"

	case models.StageAskPref:
		// The preference is stored but not yet used for filtering.
		sess.Collected.Preference = message
		avail, err := s.Calendar.Availability(ctx, sess.Collected.AppointmentType)
		if err != nil {
			logServiceFailure("availability", err)
			sess.Stage = models.StageError
			return "Sorry — I couldn't reach the scheduling system right now. Would you like to try again later or call the clinic?"
		}

		suggestions := collectSuggestions(avail, maxSlotSuggestions)
		sess.Suggestions = suggestions
		if len(suggestions) == 0 {
			sess.Stage = models.StageNoSlots
			return "I couldn't find available slots in the next week. Would you like to try alternative dates or be placed on a waitlist?"
		}
		sess.Stage = models.StageSuggest
		var b strings.Builder
		b.WriteString("Here are some available slots I found:")
		for _, slot := range suggestions {
			fmt.Fprintf(&b, "\n- %s %s", slot.Date, slot.StartTime)
		}
		b.WriteString("\nWhich of these works best for you? (reply with date and start_time e.g. 2024-01-17 15:30)")
		return b.String()

	case models.StageSuggest:
		parts := strings.Fields(message)
		if len(parts) < 2 {
			return "Please reply with the date and start_time from the suggestions, e.g. 2024-01-17 15:30"
		}
		sess.Collected.Date = parts[0]
		sess.Collected.StartTime = parts[1]
		sess.Stage = models.StageCollectContact
		return "Great — before I book, could you share your full name, phone number, and email (one per line or comma-separated)?"

	case models.StageCollectContact:
		parts := splitContactParts(message)
		if len(parts) < 3 {
			return "I need your name, phone, and email. Please provide them (comma-separated)."
		}
		patient := models.Patient{Name: parts[0], Phone: parts[1], Email: parts[2]}
		sess.Collected.Patient = &patient

		appt := models.Appointment{
			AppointmentType: sess.Collected.AppointmentType,
			Date:            sess.Collected.Date,
			StartTime:       sess.Collected.StartTime,
			Patient:         patient,
			Reason:          sess.Collected.Reason,
		}
		conf, err := s.Calendar.Book(ctx, appt)
		if err != nil {
			logServiceFailure("book", err)
			sess.Stage = models.StageError
			return "Booking failed due to a scheduling service issue. Please try again later or call the clinic."
		}
		sess.Stage = models.StageDone
		sess.Collected.BookingID = conf.BookingID
		s.scheduleReminder(conf.BookingID, appt)
		return fmt.Sprintf("All set! Your appointment is confirmed. Confirmation code: %s\nBooking ID: %s", conf.ConfirmationCode, conf.BookingID)

	default:
		// Covers clarify, no_slots, and anything else unexpected.
		return rephraseReply
	}
}

// collectSuggestions flattens the availability response into at most max
// slot candidates, walking days in order and slots within each day.
func collectSuggestions(avail *models.Availability, max int) []models.SlotCandidate {
	var suggestions []models.SlotCandidate
	for _, day := range avail.Dates {
		for _, slot := range day.AvailableSlots {
			suggestions = append(suggestions, models.SlotCandidate{
				Date:      day.Date,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
			if len(suggestions) >= max {
				return suggestions
			}
		}
	}
	return suggestions
}

// splitContactParts normalizes newlines to commas and returns the
// trimmed non-empty pieces.
func splitContactParts(message string) []string {
	normalized := strings.ReplaceAll(message, "\n", ",")
	var parts []string
	for _, p := range strings.Split(normalized, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// scheduleReminder enqueues an appointment reminder. Failures are logged
// only: the booking already succeeded and the reply must not change.
func (s *DefaultAgentService) scheduleReminder(bookingID string, appt models.Appointment) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		BookingID: bookingID,
		Date:      appt.Date,
		StartTime: appt.StartTime,
		Patient:   appt.Patient,
	}
	if err := s.Reminders.ScheduleBookingReminder(payload); err != nil {
		utils.GetLogger().Warn("agent: failed to enqueue reminder",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}
