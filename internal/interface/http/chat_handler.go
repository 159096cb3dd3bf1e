package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/calmline/calmline-api/internal/application"
	"github.com/calmline/calmline-api/internal/domain/entity"
	"github.com/calmline/calmline-api/internal/interface/middleware"
	"github.com/calmline/calmline-api/pkg/response"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat handles POST /api/chat. The owning user is always the verified
// caller; the request body carries only the message.
func (h *ChatHandler) Chat(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.MsgMissingToken)
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgNoMessage)
		return
	}

	sess, err := h.Svc.RecordChat(c.Request.Context(), claims.UserID, req.Message)
	if err != nil {
		if errors.Is(err, application.ErrEmptyMessage) {
			response.Error(c, http.StatusBadRequest, response.MsgNoMessage)
			return
		}
		h.Logger.WithError(err).Error("record chat failed")
		response.Error(c, http.StatusInternalServerError, response.MsgServerError)
		return
	}

	response.OK(c, gin.H{"reply": sess.Reply, "id": sess.ID})
}

// Sessions handles GET /api/sessions: the caller's history, newest first.
func (h *ChatHandler) Sessions(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.MsgMissingToken)
		return
	}

	sessions, err := h.Svc.ListSessions(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.WithError(err).Error("list sessions failed")
		response.Error(c, http.StatusInternalServerError, response.MsgServerError)
		return
	}
	if sessions == nil {
		sessions = []entity.ChatSession{}
	}

	response.OK(c, gin.H{"sessions": sessions})
}
