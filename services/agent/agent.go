package agent

import (
	"context"
	"fmt"
	"sync"

	sessionRepo "clinicflow/database/repository/session"
	"clinicflow/models"
	"clinicflow/services/calendar"
	"clinicflow/services/faq"
	"clinicflow/services/tasks"
	"clinicflow/utils"

	"go.uber.org/zap"
)

const (
	clarifyPrompt = "Do you want to (A) schedule a new appointment, (B) reschedule an existing one, (C) cancel, or (D) ask about clinic info (hours, insurance, etc.)? Please reply A/B/C/D."
	followUpOffer = "If you'd like to schedule another appointment, let me know!"
	rephraseReply = "Sorry, I didn't understand. Could you rephrase?"
)

// DefaultAgentService routes messages between the FAQ retriever and the
// three flow engines, keeping per-user session state in the repository.
type DefaultAgentService struct {
	Sessions  sessionRepo.SessionRepository
	Calendar  calendar.CalendarClient
	FAQ       faq.FAQService
	Reminders tasks.ReminderScheduler // optional; nil disables reminders

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDefaultAgentService(
	sessions sessionRepo.SessionRepository,
	cal calendar.CalendarClient,
	faqSvc faq.FAQService,
	reminders tasks.ReminderScheduler,
) *DefaultAgentService {
	return &DefaultAgentService{
		Sessions:  sessions,
		Calendar:  cal,
		FAQ:       faqSvc,
		Reminders: reminders,
		locks:     make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex for a user key, creating one if it doesn't
// exist. Turns for the same key are serialized; distinct keys proceed in
// parallel.
func (s *DefaultAgentService) userLock(userKey string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[userKey]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userKey] = lock
	}
	return lock
}

// HandleMessage processes one dialogue turn.
//
// FAQ questions are answered immediately even mid-flow: the session is
// left untouched, so the interrupted flow resumes on the next message.
func (s *DefaultAgentService) HandleMessage(ctx context.Context, userKey, message string) (string, *models.Session, error) {
	lock := s.userLock(userKey)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Sessions.Get(ctx, userKey)
	if err != nil {
		return "", nil, fmt.Errorf("load session: %w", err)
	}

	intent := ClassifyIntent(message)
	if intent == models.IntentFAQ {
		return s.FAQ.Answer(ctx, message), sess, nil
	}

	// A flow that finished on the previous turn is cleared now; the
	// conversation starts fresh on the message after this one.
	if sess.Stage.Terminal() {
		if err := s.Sessions.Delete(ctx, userKey); err != nil {
			return "", nil, fmt.Errorf("clear session: %w", err)
		}
		return followUpOffer, models.NewSession(), nil
	}

	var reply string
	switch {
	case sess.Flow == models.FlowReschedule:
		reply = s.handleRescheduleFlow(ctx, sess, message)
	case sess.Flow == models.FlowCancel:
		reply = s.handleCancelFlow(ctx, sess, message)
	case sess.Flow == models.FlowSchedule || sess.Stage != models.StageGreeting:
		reply = s.handleScheduleFlow(ctx, sess, message)
	default:
		reply = s.routeIntent(sess, intent)
	}

	if err := s.Sessions.Put(ctx, userKey, sess); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}
	return reply, sess, nil
}

// routeIntent starts a flow for a recognized intent, or asks the
// clarifying menu. The menu is advisory only: the A/B/C/D answer is not
// parsed back, the next message simply re-enters routing.
func (s *DefaultAgentService) routeIntent(sess *models.Session, intent models.Intent) string {
	switch intent {
	case models.IntentCancel:
		sess.Flow = models.FlowCancel
		sess.Stage = models.StageAskCancelInfo
		return "Sure — I can help cancel an appointment. Could you provide your booking ID or the email used to book?"
	case models.IntentReschedule:
		sess.Flow = models.FlowReschedule
		sess.Stage = models.StageAskBookingID
		return "Okay — I can help reschedule. What's your booking ID (or email) for the appointment you'd like to move?"
	case models.IntentSchedule:
		sess.Flow = models.FlowSchedule
		sess.Stage = models.StageAskReason
		return "Hi — I'd be happy to help you schedule an appointment. What's the main reason for your visit today?"
	default:
		sess.Stage = models.StageClarify
		return clarifyPrompt
	}
}

// logServiceFailure records the wrapped calendar error; the user only
// ever sees a generic apology.
func logServiceFailure(op string, err error) {
	utils.GetLogger().Warn("agent: calendar call failed", zap.String("op", op), zap.Error(err))
}
