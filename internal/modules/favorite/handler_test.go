package favorite

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"pictgram/internal/database"
	"pictgram/internal/domain"
	"pictgram/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestFavoriteEndpoints_FullFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Connect(fmt.Sprintf("file:favorite_handler_test_%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, database.Migrate(db))

	user := &domain.User{Email: "fan@example.com", Name: "Fan", PasswordHash: "x"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	topic := &domain.Topic{UserID: user.ID, Description: "pin me"}
	require.NoError(t, repository.NewTopicRepository(db).Create(context.Background(), topic))

	h := NewHandler(NewService(repository.NewFavoriteRepository(db), repository.NewTopicRepository(db)))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-User-ID") != "" {
			c.Set("user_id", user.ID)
		}
		c.Next()
	})
	h.RegisterRoutes(r.Group("/api/v1"))

	do := func(method, path string, authorized bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if authorized {
			req.Header.Set("X-Test-User-ID", "1")
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}
	path := "/api/v1/topics/" + strconv.FormatInt(topic.ID, 10) + "/favorite"

	assert.Equal(t, http.StatusUnauthorized, do(http.MethodPost, path, false).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/api/v1/topics/x/favorite", true).Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodPost, "/api/v1/topics/9999/favorite", true).Code)

	rr := do(http.MethodPost, path, true)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = do(http.MethodPost, path, true)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "ALREADY_FAVORITED")

	assert.Equal(t, http.StatusOK, do(http.MethodDelete, path, true).Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodDelete, path, true).Code)
}
