package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/calmline/calmline-api/internal/interface/http"
	"github.com/calmline/calmline-api/internal/interface/middleware"
	"github.com/calmline/calmline-api/pkg/helpers"
)

// ChatModule mounts the token-protected chat endpoints.
type ChatModule struct {
	Handler *handlers.ChatHandler
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
}

func NewChatModule(h *handlers.ChatHandler, jwt *helpers.JWTManager, logger *logrus.Logger) *ChatModule {
	return &ChatModule{Handler: h, JWT: jwt, Logger: logger}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Logger))
	{
		auth.POST("/chat", m.Handler.Chat)
		auth.GET("/sessions", m.Handler.Sessions)
	}
}
