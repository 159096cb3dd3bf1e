package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and never leaves the backend;
// PublicView is the only shape handlers serialize.
type User struct {
	ID           string
	Name         string
	Email        string // stored normalized: lower-cased, trimmed
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the externally visible projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) PublicView() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
