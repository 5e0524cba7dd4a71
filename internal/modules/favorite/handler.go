package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"pictgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/topics/:id/favorite", h.AddFavorite)
	rg.DELETE("/topics/:id/favorite", h.RemoveFavorite)
}

// AddFavorite godoc
// @Summary Favorite a topic
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,409 {object} map[string]interface{}
// @Router /topics/{id}/favorite [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	topicID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid topic ID")
		return
	}

	fav, err := h.service.Add(c.Request.Context(), userID, topicID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTopicNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Topic not found")
		case errors.Is(err, ErrAlreadyFavorited):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITED", "Topic is already in favorites")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, fav)
}

// RemoveFavorite godoc
// @Summary Remove a topic from favorites
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /topics/{id}/favorite [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	topicID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid topic ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, topicID); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	response.Message(c, http.StatusOK, "removed")
}
