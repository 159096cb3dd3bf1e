package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndParse(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, err := m.Issue("user-123", "Jo", "jo@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "Jo", claims.Name)
	assert.Equal(t, "jo@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -time.Second)

	tok, err := m.Issue("u1", "A", "a@x.com")
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTManager("right-secret", time.Hour).Issue("u2", "B", "b@x.com")
	require.NoError(t, err)

	_, err = NewJWTManager("wrong-secret", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_TamperedPayload(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, err := m.Issue("u3", "C", "c@x.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	// Flip one character of the signed payload
	payload := []byte(parts[1])
	mid := len(payload) / 2
	if payload[mid] == 'A' {
		payload[mid] = 'B'
	} else {
		payload[mid] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = m.Parse(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	_, err := m.Parse("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
