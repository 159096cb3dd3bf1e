package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/calmline/calmline-api/internal/domain/entity"
	"github.com/calmline/calmline-api/internal/domain/repository"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Append(ctx context.Context, userID, message, reply string) (*entity.ChatSession, error) {
	s := &entity.ChatSession{UserID: userID, Message: message, Reply: reply}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO chat_sessions (user_id, message, reply)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, userID, message, reply)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.ChatSession, error) {
	if limit <= 0 || limit > repository.MaxSessionsPerPage {
		limit = repository.MaxSessionsPerPage
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, message, reply, created_at
		FROM chat_sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]entity.ChatSession, 0, limit)
	for rows.Next() {
		var s entity.ChatSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Message, &s.Reply, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
