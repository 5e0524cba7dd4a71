package topic

import (
	"io"
	"time"
)

type UserView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type FavoriteView struct {
	ID      int64 `json:"id"`
	TopicID int64 `json:"topic_id"`
	UserID  int64 `json:"user_id"`
}

// TopicView is a topic prepared for one viewer. ImageData is set only when the
// image was inlined.
type TopicView struct {
	ID             int64          `json:"id"`
	Description    string         `json:"description"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	ImageData      *string        `json:"image_data,omitempty"`
	Author         UserView       `json:"author"`
	Favorites      []FavoriteView `json:"favorites"`
	ViewerFavorite *FavoriteView  `json:"viewer_favorite,omitempty"`
}

// UploadedImage is an image submitted with a new topic.
type UploadedImage struct {
	Filename string
	Content  io.Reader
}

type IngestInput struct {
	Description string         `json:"description" validate:"required,max=1000"`
	AuthorID    int64          `json:"author_id" validate:"required"`
	Image       *UploadedImage `json:"-"`
}

// TopicCreatedEvent is pushed to connected clients after a topic is saved.
type TopicCreatedEvent struct {
	Type  string    `json:"type"`
	Topic TopicView `json:"topic"`
}
