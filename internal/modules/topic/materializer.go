package topic

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"
)

// Opener opens an image for reading.
type Opener func(path string) (io.ReadCloser, error)

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ImageMaterializer turns a stored image path into an inline data URI when
// inline mode is on.
type ImageMaterializer struct {
	inline bool
	open   Opener
}

func NewImageMaterializer(inline bool, open Opener) *ImageMaterializer {
	if open == nil {
		open = openFile
	}
	return &ImageMaterializer{inline: inline, open: open}
}

// Materialize returns nil without touching storage when inline mode is off or
// path is empty. Otherwise it reads the whole file and returns
// "data:<mime>;base64,<payload>".
func (m *ImageMaterializer) Materialize(path string) (*string, error) {
	if !m.inline || path == "" {
		return nil, nil
	}

	rc, err := m.open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrResourceNotFound, path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrResourceNotFound, path, err)
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + 16 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(ResolveMimeType(path))
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))

	uri := b.String()
	return &uri, nil
}
