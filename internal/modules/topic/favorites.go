package topic

import "pictgram/internal/domain"

// AggregateFavorites converts favorites to views in input order and picks the
// viewer's own favorite. If the viewer appears more than once, the last match
// wins. The returned pointer refers into the returned slice.
func AggregateFavorites(favorites []domain.Favorite, viewerID int64) ([]FavoriteView, *FavoriteView) {
	views := make([]FavoriteView, len(favorites))
	var viewer *FavoriteView
	for i, f := range favorites {
		views[i] = FavoriteView{
			ID:      f.ID,
			TopicID: f.TopicID,
			UserID:  f.UserID,
		}
		if f.UserID == viewerID {
			viewer = &views[i]
		}
	}
	return views, viewer
}
