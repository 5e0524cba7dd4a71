package topic

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"pictgram/internal/domain"
	"pictgram/internal/metrics"
	"pictgram/internal/repository"
)

const EventTopicCreated = "topic_created"

// Service renders the feed and accepts new topics.
type Service struct {
	topics    TopicRepository
	assembler *FeedAssembler
	ingester  *TopicIngester
	notifier  Notifier
}

func NewService(topics TopicRepository, assembler *FeedAssembler, ingester *TopicIngester, notifier Notifier) *Service {
	return &Service{
		topics:    topics,
		assembler: assembler,
		ingester:  ingester,
		notifier:  notifier,
	}
}

// Feed returns every topic for viewerID, newest first.
func (s *Service) Feed(ctx context.Context, viewerID int64) ([]TopicView, error) {
	topics, err := s.topics.ListFeed(ctx)
	if err != nil {
		metrics.FeedRenders.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list topics: %w", err)
	}

	views, err := s.assembler.AssembleFeed(topics, viewerID)
	if err != nil {
		metrics.FeedRenders.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.FeedRenders.WithLabelValues("ok").Inc()
	return views, nil
}

func (s *Service) Get(ctx context.Context, topicID, viewerID int64) (*TopicView, error) {
	t, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	view, err := s.assembler.AssembleTopic(t, viewerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Create ingests and saves a topic, then announces it. The returned view is
// rendered for the author. Once the topic is saved Create succeeds: if the
// reload fails the view is built from the saved row without image data.
func (s *Service) Create(ctx context.Context, in IngestInput) (*TopicView, error) {
	t, err := s.ingester.Ingest(ctx, in)
	if err != nil {
		metrics.TopicIngests.WithLabelValues(ingestResult(err)).Inc()
		return nil, err
	}

	if err := s.topics.Create(ctx, t); err != nil {
		if t.Path != "" {
			_ = os.Remove(t.Path) // rollback file on DB error
		}
		metrics.TopicIngests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("save topic: %w", err)
	}
	metrics.TopicIngests.WithLabelValues("ok").Inc()

	view, err := s.Get(ctx, t.ID, in.AuthorID)
	if err != nil {
		log.Printf("topic_reload_failed topic_id=%d author_id=%d error=%q", t.ID, in.AuthorID, err.Error())
		view = savedView(t)
	}

	if s.notifier != nil {
		delivered := s.notifier.Broadcast(TopicCreatedEvent{Type: EventTopicCreated, Topic: *view})
		log.Printf("topic_created topic_id=%d author_id=%d delivered=%d", view.ID, in.AuthorID, delivered)
	}
	return view, nil
}

func savedView(t *domain.Topic) *TopicView {
	return &TopicView{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Author:      authorView(t),
		Favorites:   []FavoriteView{},
	}
}

func ingestResult(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrStorageWrite):
		return "storage_error"
	default:
		return "error"
	}
}
