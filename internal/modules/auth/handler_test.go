package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pictgram/internal/database"
	"pictgram/internal/pkg/jwt"
	"pictgram/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestAuthEndpoints_SignupThenLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Connect(fmt.Sprintf("file:auth_handler_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	NewHandler(NewService(repository.NewUserRepository(db), jwt.New("secret", time.Hour))).RegisterRoutes(r.Group("/api/v1"))

	post := func(path string, body any) *httptest.ResponseRecorder {
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	signup := map[string]string{"email": "pic@example.com", "name": "Pic", "password": "password123"}
	rr := post("/api/v1/auth/signup", signup)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "password_hash")

	rr = post("/api/v1/auth/signup", signup)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = post("/api/v1/auth/login", map[string]string{"email": "pic@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)

	rr = post("/api/v1/auth/login", map[string]string{"email": "pic@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = post("/api/v1/auth/login", map[string]string{"email": "pic@example.com"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
