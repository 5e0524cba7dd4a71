package topic

import (
	"fmt"
	"log"

	"pictgram/internal/domain"
	"pictgram/internal/metrics"
)

// FeedAssembler builds per-viewer topic views.
type FeedAssembler struct {
	images     *ImageMaterializer
	bestEffort bool
}

// NewFeedAssembler returns an assembler. With bestEffort set, a topic whose
// image cannot be read is rendered without image data; otherwise the whole
// feed fails.
func NewFeedAssembler(images *ImageMaterializer, bestEffort bool) *FeedAssembler {
	return &FeedAssembler{images: images, bestEffort: bestEffort}
}

// AssembleFeed keeps the order of topics.
func (a *FeedAssembler) AssembleFeed(topics []domain.Topic, viewerID int64) ([]TopicView, error) {
	views := make([]TopicView, 0, len(topics))
	for i := range topics {
		view, err := a.AssembleTopic(&topics[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (a *FeedAssembler) AssembleTopic(t *domain.Topic, viewerID int64) (TopicView, error) {
	view := TopicView{
		ID:          t.ID,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Author:      authorView(t),
	}

	imageData, err := a.images.Materialize(t.Path)
	switch {
	case err == nil:
		if imageData != nil {
			metrics.ImageMaterializations.WithLabelValues("inlined").Inc()
		}
		view.ImageData = imageData
	case a.bestEffort:
		metrics.ImageMaterializations.WithLabelValues("skipped").Inc()
		log.Printf("feed_image_skipped topic_id=%d path=%q error=%q", t.ID, t.Path, err.Error())
	default:
		metrics.ImageMaterializations.WithLabelValues("failed").Inc()
		return TopicView{}, fmt.Errorf("topic %d: %w", t.ID, err)
	}

	view.Favorites, view.ViewerFavorite = AggregateFavorites(t.Favorites, viewerID)
	return view, nil
}

func authorView(t *domain.Topic) UserView {
	if t.User == nil {
		return UserView{ID: t.UserID}
	}
	return UserView{ID: t.User.ID, Name: t.User.Name}
}
