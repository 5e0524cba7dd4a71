package repository

import (
	"context"
	"errors"

	"pictgram/internal/domain"

	"gorm.io/gorm"
)

// TopicRepository loads and stores topics together with their authors and favorites.
type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Order("favorites.id ASC")
		})
}

// ListFeed returns every topic, most recently updated first.
func (r *TopicRepository) ListFeed(ctx context.Context) ([]domain.Topic, error) {
	var topics []domain.Topic
	err := r.withAssociations(ctx).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	var t domain.Topic
	err := r.withAssociations(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TopicRepository) Create(ctx context.Context, t *domain.Topic) error {
	return r.db.WithContext(ctx).Omit("User", "Favorites").Create(t).Error
}

func (r *TopicRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Topic{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
