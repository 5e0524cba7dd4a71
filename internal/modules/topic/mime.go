package topic

import (
	"path/filepath"
	"strings"
)

// ResolveMimeType maps the extension of path to an image mime type. Matching
// is case-sensitive; unknown or missing extensions yield the bare "image/".
func ResolveMimeType(path string) string {
	base := filepath.Base(path)
	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		ext = base[i+1:]
	}

	mimeType := "image/"
	switch ext {
	case "jpg", "jpeg":
		mimeType += "jpeg"
	case "png":
		mimeType += "png"
	case "gif":
		mimeType += "gif"
	}
	return mimeType
}
