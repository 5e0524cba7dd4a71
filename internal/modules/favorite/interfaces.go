package favorite

import (
	"context"

	"pictgram/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, topicID, userID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, topicID, userID int64) error
}

type TopicChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
