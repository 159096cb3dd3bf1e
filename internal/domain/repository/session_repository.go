package repository

import (
	"context"

	"github.com/calmline/calmline-api/internal/domain/entity"
)

// MaxSessionsPerPage caps how many chat turns a single listing returns.
const MaxSessionsPerPage = 100

// SessionRepository is the append-only chat log. ListByUser returns the
// owner's turns newest first, never more than limit (clamped to
// MaxSessionsPerPage). Ownership scoping happens here by construction:
// there is no way to query across users.
type SessionRepository interface {
	Append(ctx context.Context, userID, message, reply string) (*entity.ChatSession, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.ChatSession, error)
}
