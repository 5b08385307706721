package agent

import (
	"strings"

	"clinicflow/models"
)

// Keyword sets checked in priority order; the first set with a match
// wins, so "cancel my appointment" classifies as cancel.
var (
	cancelKeywords     = []string{"cancel", "cancelled", "call off", "drop"}
	rescheduleKeywords = []string{"resched", "reschedule", "change my", "move my"}
	scheduleKeywords   = []string{"book", "appointment", "schedule", "need to book"}
	faqKeywords        = []string{"insurance", "hours", "parking", "covid", "policy", "directions", "documents", "price", "fees"}
)

// ClassifyIntent maps raw text to an intent via case-insensitive
// substring matching. Pure and deterministic.
func ClassifyIntent(text string) models.Intent {
	t := strings.ToLower(text)
	if containsAny(t, cancelKeywords) {
		return models.IntentCancel
	}
	if containsAny(t, rescheduleKeywords) {
		return models.IntentReschedule
	}
	if containsAny(t, scheduleKeywords) {
		return models.IntentSchedule
	}
	if containsAny(t, faqKeywords) {
		return models.IntentFAQ
	}
	return models.IntentUnknown
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
