// Package response pins down the wire contract of the API. Clients of the
// original deployment depend on these exact shapes: success bodies are
// endpoint-specific objects, every failure is {"error": <message>}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-visible failure messages. These are part of the API contract and
// must not drift.
const (
	MsgMissingFields      = "Missing fields"
	MsgEmailRegistered    = "Email already registered"
	MsgInvalidCredentials = "Invalid credentials"
	MsgMissingToken       = "Missing token"
	MsgInvalidToken       = "Invalid token"
	MsgNoMessage          = "No message"
	MsgUserNotFound       = "User not found"
	MsgServerError        = "Server error"
)

// OK writes a 200 response with the given body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error writes the flat {"error": message} failure body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortError writes the failure body and stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
