package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const DefaultUploadDir = "./uploads"

// LocalImageStore writes uploaded images under a fixed root directory.
type LocalImageStore struct {
	root string
}

func NewLocalImageStore(root string) *LocalImageStore {
	if root == "" {
		root = DefaultUploadDir
	}
	return &LocalImageStore{root: root}
}

// Save copies r into a new file under the store root and returns its absolute
// path. The extension of name is kept verbatim because mime resolution depends on it.
func (s *LocalImageStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s%s", uuid.New().String(), sanitizeName(name), filepath.Ext(filepath.Base(name)))
	path := filepath.Join(s.root, filename)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve upload path: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		_ = dst.Close()
		_ = os.Remove(abs)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(abs)
		return "", fmt.Errorf("close file: %w", err)
	}
	return abs, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" || name == "_" {
		return "image"
	}
	return name
}
