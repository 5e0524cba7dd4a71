package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(policy OriginPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(policy))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS_AllowedOrigin(t *testing.T) {
	r := corsRouter(NewOriginPolicy([]string{" https://pictgram.app/ "}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://pictgram.app")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://pictgram.app", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoAllowHeader(t *testing.T) {
	r := corsRouter(NewOriginPolicy(nil))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := corsRouter(NewOriginPolicy(nil))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOriginPolicy_CheckOrigin(t *testing.T) {
	p := NewOriginPolicy(nil)

	req := httptest.NewRequest(http.MethodGet, "/ws/topics", nil)
	assert.True(t, p.CheckOrigin(req))

	req.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, p.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, p.CheckOrigin(req))
}
