package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/calmline/calmline-api/internal/domain/entity"
	"github.com/calmline/calmline-api/internal/domain/repository"
	"github.com/calmline/calmline-api/internal/reply"
)

// ErrEmptyMessage rejects chat turns with a blank message before anything
// touches the store.
var ErrEmptyMessage = errors.New("no message")

// ChatService records chat turns and lists a user's history. The user id on
// every call must come from verified token claims; nothing here accepts a
// client-supplied owner.
type ChatService struct {
	Sessions repository.SessionRepository
	Replies  reply.Generator
	Logger   *logrus.Logger
}

func NewChatService(sessions repository.SessionRepository, gen reply.Generator, logger *logrus.Logger) *ChatService {
	return &ChatService{Sessions: sessions, Replies: gen, Logger: logger}
}

// RecordChat generates a reply for the message and appends the turn to the
// caller's history. The message is stored verbatim.
func (s *ChatService) RecordChat(ctx context.Context, userID, message string) (*entity.ChatSession, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	answer := s.Replies.Generate(message)

	sess, err := s.Sessions.Append(ctx, userID, message, answer)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("append chat session failed")
		}
		return nil, err
	}
	return sess, nil
}

// ListSessions returns the caller's turns, newest first, capped at the
// fixed page size.
func (s *ChatService) ListSessions(ctx context.Context, userID string) ([]entity.ChatSession, error) {
	return s.Sessions.ListByUser(ctx, userID, repository.MaxSessionsPerPage)
}
