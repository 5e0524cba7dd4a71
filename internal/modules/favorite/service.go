package favorite

import (
	"context"
	"errors"

	"pictgram/internal/domain"
	"pictgram/internal/repository"
)

// Service lets a user like and unlike topics.
type Service struct {
	favorites FavoriteRepository
	topics    TopicChecker
}

func NewService(favorites FavoriteRepository, topics TopicChecker) *Service {
	return &Service{favorites: favorites, topics: topics}
}

func (s *Service) Add(ctx context.Context, userID, topicID int64) (*domain.Favorite, error) {
	exists, err := s.topics.Exists(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTopicNotFound
	}

	fav, err := s.favorites.Add(ctx, topicID, userID)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrAlreadyFavorited
	}
	return fav, err
}

func (s *Service) Remove(ctx context.Context, userID, topicID int64) error {
	err := s.favorites.Remove(ctx, topicID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}
