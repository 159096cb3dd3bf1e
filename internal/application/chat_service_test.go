package application

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmline/calmline-api/internal/domain/entity"
	"github.com/calmline/calmline-api/internal/domain/repository"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []entity.ChatSession
	clock    time.Time
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{clock: time.Now()}
}

func (f *fakeSessionRepo) Append(_ context.Context, userID, message, reply string) (*entity.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = f.clock.Add(time.Millisecond) // strictly increasing timestamps
	s := entity.ChatSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		Reply:     reply,
		CreatedAt: f.clock,
	}
	f.sessions = append(f.sessions, s)
	return &s, nil
}

func (f *fakeSessionRepo) ListByUser(_ context.Context, userID string, limit int) ([]entity.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit <= 0 || limit > repository.MaxSessionsPerPage {
		limit = repository.MaxSessionsPerPage
	}
	var out []entity.ChatSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubGenerator struct{ reply string }

func (s stubGenerator) Generate(string) string { return s.reply }

func TestRecordChat(t *testing.T) {
	t.Parallel()

	repo := newFakeSessionRepo()
	svc := NewChatService(repo, stubGenerator{reply: "it will be okay"}, nil)
	ctx := context.Background()

	sess, err := svc.RecordChat(ctx, "user-a", "I feel anxious")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-a", sess.UserID)
	assert.Equal(t, "I feel anxious", sess.Message)
	assert.Equal(t, "it will be okay", sess.Reply)
}

func TestRecordChat_EmptyMessage(t *testing.T) {
	t.Parallel()

	svc := NewChatService(newFakeSessionRepo(), stubGenerator{}, nil)

	for _, m := range []string{"", "   ", "\n\t"} {
		_, err := svc.RecordChat(context.Background(), "user-a", m)
		assert.ErrorIs(t, err, ErrEmptyMessage, "message %q", m)
	}
}

func TestListSessions_OwnershipScoping(t *testing.T) {
	t.Parallel()

	repo := newFakeSessionRepo()
	svc := NewChatService(repo, stubGenerator{reply: "r"}, nil)
	ctx := context.Background()

	_, err := svc.RecordChat(ctx, "user-a", "hello")
	require.NoError(t, err)

	mine, err := svc.ListSessions(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "hello", mine[0].Message)

	theirs, err := svc.ListSessions(ctx, "user-b")
	require.NoError(t, err)
	assert.Empty(t, theirs, "another user must never see these records")
}

func TestListSessions_NewestFirstAndCapped(t *testing.T) {
	t.Parallel()

	repo := newFakeSessionRepo()
	svc := NewChatService(repo, stubGenerator{reply: "r"}, nil)
	ctx := context.Background()

	for i := 0; i < repository.MaxSessionsPerPage+20; i++ {
		_, err := svc.RecordChat(ctx, "user-a", "msg")
		require.NoError(t, err)
	}

	got, err := svc.ListSessions(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, got, repository.MaxSessionsPerPage)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt),
			"sessions must be ordered newest first")
	}
}
