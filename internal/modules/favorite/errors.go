package favorite

import "errors"

var (
	ErrTopicNotFound    = errors.New("topic not found")
	ErrAlreadyFavorited = errors.New("topic already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
