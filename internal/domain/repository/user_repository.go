package repository

import (
	"context"
	"errors"

	"github.com/calmline/calmline-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert collides with the
	// unique index on users.email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the credential store. Create relies on the database
// unique constraint for email uniqueness so concurrent registrations with
// the same address cannot both succeed. Emails passed in are expected to
// be normalized already.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
