package topic

import (
	"errors"
	"log"
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
	topics := rg.Group("/topics")
	{
		topics.GET("", h.List)
		topics.POST("", h.Create)
		topics.GET("/:id", h.GetByID)
	}
}

// List godoc
// @Summary Topic feed for the current user
// @Tags Topics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /topics [get]
func (h *Handler) List(c *gin.Context) {
	viewerID := mustUserID(c)
	if viewerID == 0 {
		return
	}

	views, err := h.service.Feed(c.Request.Context(), viewerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views)
}

// GetByID godoc
// @Summary Single topic for the current user
// @Tags Topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /topics/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	viewerID := mustUserID(c)
	if viewerID == 0 {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid topic ID")
		return
	}

	view, err := h.service.Get(c.Request.Context(), id, viewerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Create godoc
// @Summary Post a new topic
// @Tags Topics
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param description formData string true "Topic text"
// @Param image formData file false "Attached image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,500 {object} map[string]interface{}
// @Router /topics [post]
func (h *Handler) Create(c *gin.Context) {
	authorID := mustUserID(c)
	if authorID == 0 {
		return
	}

	in := IngestInput{
		Description: c.PostForm("description"),
		AuthorID:    authorID,
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader.Size > 0 {
		file, err := fileHeader.Open()
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", "Failed to read uploaded image")
			return
		}
		defer file.Close()
		in.Image = &UploadedImage{Filename: fileHeader.Filename, Content: file}
	}

	view, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Topic could not be posted", verr.Fields)
	case errors.Is(err, ErrTopicNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Topic not found")
	case errors.Is(err, ErrStorageWrite):
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORAGE_WRITE_FAILED", "Failed to store image")
	case errors.Is(err, ErrResourceNotFound):
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "IMAGE_UNREADABLE", "Failed to load topic image")
	default:
		log.Printf("topic_handler_error path=%s error=%q", c.Request.URL.Path, err.Error())
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func mustUserID(c *gin.Context) int64 {
	id, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0
	}
	switch v := id.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user id")
	return 0
}
