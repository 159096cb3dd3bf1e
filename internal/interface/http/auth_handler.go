// Package handlers contains the gin handlers for the public API. Response
// shapes here are a compatibility contract; see pkg/response.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/calmline/calmline-api/internal/application"
	"github.com/calmline/calmline-api/internal/domain/repository"
	"github.com/calmline/calmline-api/internal/interface/middleware"
	"github.com/calmline/calmline-api/pkg/helpers"
	"github.com/calmline/calmline-api/pkg/mailer"
	"github.com/calmline/calmline-api/pkg/response"
)

type AuthHandler struct {
	Svc         *application.AuthService
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

// Registration only insists on the three fields being present; the original
// deployment accepts any non-empty triple, so format rules stay client-side.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgMissingFields)
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, response.MsgEmailRegistered)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, response.MsgServerError)
		return
	}

	h.enqueueWelcome(c, res.User.Name, res.User.Email)
	response.OK(c, gin.H{"user": res.User, "token": res.Token})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgMissingFields)
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, response.MsgInvalidCredentials)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, response.MsgServerError)
		return
	}

	response.OK(c, gin.H{"user": res.User, "token": res.Token})
}

// Profile handles GET /api/profile. Identity comes from the auth gate.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.MsgMissingToken)
		return
	}

	user, err := h.Svc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		h.Logger.WithError(err).Error("profile lookup failed")
		response.Error(c, http.StatusInternalServerError, response.MsgServerError)
		return
	}

	response.OK(c, gin.H{"user": user})
}

// enqueueWelcome fires the welcome email job. Registration never fails on
// a broker problem; failures are logged and dropped.
func (h *AuthHandler) enqueueWelcome(c *gin.Context, name, email string) {
	if h.Pub == nil || !h.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": name},
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).Warn("failed to publish welcome email job")
	}
}
