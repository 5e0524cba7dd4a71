package repository

import (
	"context"

	"pictgram/internal/domain"

	"gorm.io/gorm"
)

// FavoriteRepository stores per-user favorites on topics.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add returns ErrDuplicate when the user already favorited the topic.
func (r *FavoriteRepository) Add(ctx context.Context, topicID, userID int64) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		TopicID: topicID,
		UserID:  userID,
	}
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return favorite, nil
}

// Remove returns ErrNotFound when there was nothing to delete.
func (r *FavoriteRepository) Remove(ctx context.Context, topicID, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
