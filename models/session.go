package models

// Intent is the coarse category derived from a message when no flow owns
// the session.
type Intent string

const (
	IntentSchedule   Intent = "schedule"
	IntentReschedule Intent = "reschedule"
	IntentCancel     Intent = "cancel"
	IntentFAQ        Intent = "faq"
	IntentUnknown    Intent = "unknown"
)

// Flow identifies which task state machine currently owns a session.
// FlowNone means no flow is active.
type Flow string

const (
	FlowNone       Flow = ""
	FlowSchedule   Flow = "schedule"
	FlowReschedule Flow = "reschedule"
	FlowCancel     Flow = "cancel"
)

// Stage is a position within the active flow's state machine. The
// greeting and clarify stages belong to the shared no-flow stage space.
type Stage string

const (
	StageGreeting Stage = "greeting"
	StageClarify  Stage = "clarify"

	// Schedule flow stages.
	StageAskReason      Stage = "ask_reason"
	StageAskType        Stage = "ask_type"
	StageAskPref        Stage = "ask_pref"
	StageSuggest        Stage = "suggest"
	StageCollectContact Stage = "collect_contact"
	StageNoSlots        Stage = "no_slots"

	// Cancel flow stage.
	StageAskCancelInfo Stage = "ask_cancel_info"

	// Reschedule flow stages.
	StageAskBookingID   Stage = "ask_booking_id"
	StageAskNewSlotPref Stage = "ask_new_slot_pref"

	// Terminal stages shared by all flows.
	StageDone  Stage = "done"
	StageError Stage = "error"
)

// Terminal reports whether the stage ends its flow. A session at a
// terminal stage is cleared on the next inbound message.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageError
}

// Patient holds the contact details collected before booking.
type Patient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SlotCandidate is one available slot offered to the user. The date and
// time strings are passed through to the calendar backend unmodified.
type SlotCandidate struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Collected accumulates structured fields as a flow progresses.
type Collected struct {
	Reason          string   `json:"reason,omitempty"`
	AppointmentType string   `json:"appointment_type,omitempty"`
	Preference      string   `json:"preference,omitempty"`
	Date            string   `json:"date,omitempty"`
	StartTime       string   `json:"start_time,omitempty"`
	Patient         *Patient `json:"patient,omitempty"`
	BookingID       string   `json:"booking_id,omitempty"`
}

// Session is the per-user conversational state. At most one flow is
// active at a time; Stage is meaningful only relative to Flow.
type Session struct {
	Flow        Flow            `json:"flow,omitempty"`
	Stage       Stage           `json:"stage"`
	Collected   Collected       `json:"collected"`
	Suggestions []SlotCandidate `json:"suggestions,omitempty"`
}

// NewSession returns the initial state for a new user key.
func NewSession() *Session {
	return &Session{Stage: StageGreeting}
}
