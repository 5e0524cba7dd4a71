package domain

import "time"

// Topic is a single feed post. Path is the storage location of the attached
// image, or "" when the post has none.
type Topic struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Path        string    `json:"path" gorm:"not null;default:''"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"index"`

	// Preloaded associations
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:TopicID"`
}

func (Topic) TableName() string {
	return "topics"
}
