package handlers

import (
	"net/http"

	"clinicflow/models"
	"clinicflow/services/agent"
	"clinicflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the dialogue agent over HTTP.
type ChatHandler struct {
	Agent agent.AgentService
}

func NewChatHandler(agentSvc agent.AgentService) *ChatHandler {
	return &ChatHandler{Agent: agentSvc}
}

// HandleChatMessage processes one chat turn. The returned context is the
// session snapshot; callers round-trip it opaquely.
func (h *ChatHandler) HandleChatMessage(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "message is required")
		return
	}
	if req.UserID == "" {
		req.UserID = uuid.New().String()
	}

	reply, sess, err := h.Agent.HandleMessage(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		logger.Error("Chat turn failed", zap.String("userId", req.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		UserID:   req.UserID,
		Response: reply,
		Context:  sess,
	})
}
