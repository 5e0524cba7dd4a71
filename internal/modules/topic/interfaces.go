package topic

import (
	"context"

	"pictgram/internal/domain"
)

type TopicRepository interface {
	ListFeed(ctx context.Context) ([]domain.Topic, error)
	GetByID(ctx context.Context, id int64) (*domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) error
}

// Notifier pushes a message to every connected client.
type Notifier interface {
	Broadcast(message interface{}) int
}
