package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/manivarun57/support-portal/apperrors"
)

// LocalStore writes attachment bytes under a root directory. Returned URLs
// are served by the router's /uploads static group.
type LocalStore struct {
	root    string
	maxSize int64
}

// NewLocalStore ensures the root directory exists.
func NewLocalStore(root string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", root, err)
	}
	return &LocalStore{root: root, maxSize: maxSize}, nil
}

// Root returns the directory attachments are written under.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Store(ctx context.Context, blob, filename, contentType string) (string, int64, error) {
	data, err := DecodeBlob(blob, s.maxSize)
	if err != nil {
		return "", 0, err
	}
	key := ObjectKey(filename)
	return s.storeBytes(key, data)
}

func (s *LocalStore) storeBytes(key string, data []byte) (string, int64, error) {
	path := filepath.Join(s.root, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, apperrors.NewInternalError("failed to write attachment", err.Error())
	}
	slog.Info("stored attachment locally", "path", path, "size", len(data))
	return "/uploads/" + key, int64(len(data)), nil
}
