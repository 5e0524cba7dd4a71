package domain

import (
	"time"
)

// Favorite marks a topic as liked by a user. A user holds at most one
// favorite per topic.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	TopicID   int64     `json:"topic_id" gorm:"not null;index;uniqueIndex:idx_topic_user"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_topic_user"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
