package topic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrResourceNotFound = errors.New("image resource not found")
	ErrStorageWrite     = errors.New("image storage write failed")
	ErrValidation       = errors.New("topic validation failed")
	ErrTopicNotFound    = errors.New("topic not found")
)

// ValidationError lists the failed field constraints as field -> tag.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
