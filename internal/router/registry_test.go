package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func TestRegistryUseAppliesToAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reg := NewRegistry(engine)
	reg.Use(func(c *gin.Context) {
		c.Header("X-Marked", "1")
		c.Next()
	})
	reg.Add(pingModule{})
	reg.RegisterAll()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Marked"))
}
