// Package application contains the use-case services orchestrating the
// domain stores: account registration/login and chat-turn recording.
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/calmline/calmline-api/internal/domain/entity"
	"github.com/calmline/calmline-api/internal/domain/repository"
	"github.com/calmline/calmline-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures don't reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const profileCacheTTL = 24 * time.Hour

// AuthService implements registration, login and profile lookup on top of
// the credential store, the password hasher and the token service.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger}
}

// AuthResult is what register and login hand back to the transport layer:
// the public user view plus a bearer token carrying the same identity.
type AuthResult struct {
	User  entity.PublicUser
	Token string
}

// NormalizeEmail lower-cases and trims an address; it is the uniqueness key
// for accounts and the only form the credential store ever sees.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func profileKey(userID string) string {
	return "user:profile:" + userID
}

// Register creates an account and issues its first token. The duplicate
// check lives in the store's unique index; this method only translates the
// failure. The password hash never appears in the result or in logs.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	u := &entity.User{Name: name, Email: NormalizeEmail(email)}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issue(ctx, u)
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

// Profile returns the public view for a verified user id, served from the
// redis cache when possible. Users are immutable in this API, so the cache
// never needs invalidation.
func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.PublicUser, error) {
	if s.Redis != nil {
		var cached entity.PublicUser
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pub := u.PublicView()
	s.cacheProfile(ctx, pub)
	return &pub, nil
}

func (s *AuthService) issue(ctx context.Context, u *entity.User) (*AuthResult, error) {
	token, err := s.JWT.Issue(u.ID, u.Name, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, err
	}
	pub := u.PublicView()
	s.cacheProfile(ctx, pub)
	return &AuthResult{User: pub, Token: token}, nil
}

func (s *AuthService) cacheProfile(ctx context.Context, pub entity.PublicUser) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(pub.ID), pub, profileCacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", pub.ID).Warn("profile cache write failed")
	}
}
