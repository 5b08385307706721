package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicflow/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAgent struct {
	lastUserKey string
	lastMessage string
	reply       string
	session     *models.Session
	err         error
}

func (s *stubAgent) HandleMessage(ctx context.Context, userKey, message string) (string, *models.Session, error) {
	s.lastUserKey = userKey
	s.lastMessage = message
	return s.reply, s.session, s.err
}

func newChatRouter(agent *stubAgent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/message", NewChatHandler(agent).HandleChatMessage)
	return r
}

func TestHandleChatMessage(t *testing.T) {
	agent := &stubAgent{
		reply:   "What's the main reason for your visit today?",
		session: &models.Session{Flow: models.FlowSchedule, Stage: models.StageAskReason},
	}
	r := newChatRouter(agent)

	w := httptest.NewRecorder()
	body := `{"user_id":"u1","message":"book an appointment"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, agent.reply, resp.Response)
	require.NotNil(t, resp.Context)
	assert.Equal(t, models.StageAskReason, resp.Context.Stage)
	assert.Equal(t, "book an appointment", agent.lastMessage)
}

func TestHandleChatMessageGeneratesUserID(t *testing.T) {
	agent := &stubAgent{reply: "hi", session: models.NewSession()}
	r := newChatRouter(agent)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(`{"message":"hello"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, resp.UserID, agent.lastUserKey)
}

func TestHandleChatMessageRequiresMessage(t *testing.T) {
	r := newChatRouter(&stubAgent{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(`{"user_id":"u1"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatMessageRejectsBadJSON(t *testing.T) {
	r := newChatRouter(&stubAgent{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/message", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
