package agent

import (
	"context"
	"testing"

	"clinicflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescheduleFlowHappyPath(t *testing.T) {
	cal := &fakeCalendar{
		reschedule: func(ctx context.Context, bookingID, newDate, newStartTime string) (*models.RescheduleConfirmation, error) {
			assert.Equal(t, "APPT-17", bookingID)
			return &models.RescheduleConfirmation{
				BookingID:        bookingID,
				NewDate:          newDate,
				NewStartTime:     newStartTime,
				ConfirmationCode: "RESCH123",
				Status:           "rescheduled",
			}, nil
		},
	}
	svc, _ := newTestAgent(cal)
	ctx := context.Background()

	_, sess, err := svc.HandleMessage(ctx, "u1", "I want to reschedule")
	require.NoError(t, err)
	assert.Equal(t, models.StageAskBookingID, sess.Stage)

	reply, sess, err := svc.HandleMessage(ctx, "u1", " APPT-17 ")
	require.NoError(t, err)
	assert.Equal(t, models.StageAskNewSlotPref, sess.Stage)
	assert.Equal(t, "APPT-17", sess.Collected.BookingID)
	assert.Contains(t, reply, "YYYY-MM-DD HH:MM")

	reply, sess, err = svc.HandleMessage(ctx, "u1", "2024-02-01 10:30")
	require.NoError(t, err)
	assert.Equal(t, models.StageDone, sess.Stage)
	assert.Contains(t, reply, "2024-02-01 at 10:30")
	assert.Contains(t, reply, "RESCH123")
}

func TestRescheduleFlowRepromptsOnOneToken(t *testing.T) {
	svc, _ := newTestAgent(nil)
	ctx := context.Background()

	_, _, err := svc.HandleMessage(ctx, "u1", "I want to reschedule")
	require.NoError(t, err)
	_, _, err = svc.HandleMessage(ctx, "u1", "APPT-17")
	require.NoError(t, err)

	reply, sess, err := svc.HandleMessage(ctx, "u1", "2024-02-01")
	require.NoError(t, err)
	assert.Contains(t, reply, "format YYYY-MM-DD HH:MM")
	assert.Equal(t, models.StageAskNewSlotPref, sess.Stage)
}

func TestRescheduleFlowServiceFailureMovesToError(t *testing.T) {
	svc, _ := newTestAgent(&fakeCalendar{}) // reschedule fails
	ctx := context.Background()

	_, _, err := svc.HandleMessage(ctx, "u1", "I want to reschedule")
	require.NoError(t, err)
	_, _, err = svc.HandleMessage(ctx, "u1", "APPT-17")
	require.NoError(t, err)

	reply, sess, err := svc.HandleMessage(ctx, "u1", "2024-02-01 10:30")
	require.NoError(t, err)
	assert.Contains(t, reply, "couldn't reschedule right now")
	assert.Equal(t, models.StageError, sess.Stage)
}

func TestRescheduleFlowDefensiveFallback(t *testing.T) {
	svc, sessions := newTestAgent(nil)
	ctx := context.Background()

	require.NoError(t, sessions.Put(ctx, "u1", &models.Session{
		Flow:  models.FlowReschedule,
		Stage: models.StageGreeting,
	}))

	reply, _, err := svc.HandleMessage(ctx, "u1", "whatever")
	require.NoError(t, err)
	assert.Contains(t, reply, "you'd like to reschedule")
}
