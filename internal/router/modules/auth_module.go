package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	handlers "github.com/calmline/calmline-api/internal/interface/http"
	"github.com/calmline/calmline-api/internal/interface/middleware"
	"github.com/calmline/calmline-api/pkg/helpers"
)

// AuthModule mounts registration, login and the token-protected profile
// endpoint.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Logger: logger}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Logger))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
