package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmline/calmline-api/pkg/helpers"
)

func newGate(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt, nil), func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims not attached"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	r := newGate(helpers.NewJWTManager("s", time.Hour))

	for _, header := range []string{"", "Bearer ", "Token abc", "abc"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"error":"Missing token"}`, w.Body.String())
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newGate(helpers.NewJWTManager("s", time.Hour))

	w := doGet(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("s", -time.Minute)
	tok, err := expired.Issue("u1", "A", "a@x.com")
	require.NoError(t, err)

	r := newGate(helpers.NewJWTManager("s", time.Hour))
	w := doGet(r, "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("s", time.Hour)
	tok, err := jwt.Issue("u1", "A", "a@x.com")
	require.NoError(t, err)

	w := doGet(newGate(jwt), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
}

func TestIdentity_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := Identity(c)
	assert.False(t, ok)
}
