package topic

import (
	"context"
	"fmt"
	"io"

	"pictgram/internal/domain"
	"pictgram/internal/pkg/validator"
)

// ImageStore persists uploaded image bytes and returns their absolute path.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// TopicIngester turns a submission into a topic ready to be saved.
type TopicIngester struct {
	store  ImageStore
	inline bool
}

func NewTopicIngester(store ImageStore, inline bool) *TopicIngester {
	return &TopicIngester{store: store, inline: inline}
}

// Ingest validates in and, when inline mode is on and an image is attached,
// stores the image first. Any failure returns no topic.
func (i *TopicIngester) Ingest(ctx context.Context, in IngestInput) (*domain.Topic, error) {
	if errs := validator.Validate(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	path := ""
	if i.inline && in.Image != nil {
		saved, err := i.store.Save(ctx, in.Image.Filename, in.Image.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
		}
		path = saved
	}

	return &domain.Topic{
		UserID:      in.AuthorID,
		Description: in.Description,
		Path:        path,
	}, nil
}
