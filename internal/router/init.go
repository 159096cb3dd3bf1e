package router

import (
	"github.com/calmline/calmline-api/internal/application"
	"github.com/calmline/calmline-api/internal/container"
	pginfra "github.com/calmline/calmline-api/internal/infrastructure/postgres"
	handlers "github.com/calmline/calmline-api/internal/interface/http"
	"github.com/calmline/calmline-api/internal/reply"
	"github.com/calmline/calmline-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	sessions := pginfra.NewSessionRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetRedis(), logger)
	chatSvc := application.NewChatService(sessions, reply.NewKeywordGenerator(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	chatHandler := handlers.NewChatHandler(chatSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT(), logger))
	r.Add(modules.NewChatModule(chatHandler, container.GetJWT(), logger))
}
