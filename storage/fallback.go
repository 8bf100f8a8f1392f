package storage

import (
	"context"
	"log/slog"

	"github.com/manivarun57/support-portal/apperrors"
	"github.com/manivarun57/support-portal/config"
)

// FallbackStore tries the remote backend first and, on upload failure,
// writes to the local store instead. Client errors such as a bad encoding
// or an oversized payload are never retried.
type FallbackStore struct {
	remote BlobStore
	local  *LocalStore
}

func NewFallbackStore(remote BlobStore, local *LocalStore) *FallbackStore {
	return &FallbackStore{remote: remote, local: local}
}

func (s *FallbackStore) Store(ctx context.Context, blob, filename, contentType string) (string, int64, error) {
	url, size, err := s.remote.Store(ctx, blob, filename, contentType)
	if err == nil {
		return url, size, nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return "", 0, err
	}
	slog.Warn("remote upload failed, falling back to local storage", "error", err)
	return s.local.Store(ctx, blob, filename, contentType)
}

// New builds the blob store selected by configuration: the local directory
// backend when no bucket is configured, otherwise the remote backend with
// the configured on-remote-failure policy.
func New(ctx context.Context, cfg config.Config) (BlobStore, error) {
	local, err := NewLocalStore(cfg.UploadDir, cfg.MaxFileSize)
	if err != nil {
		return nil, err
	}
	if !cfg.UseRemoteStorage() {
		slog.Info("using local filesystem for attachments", "dir", cfg.UploadDir)
		return local, nil
	}

	remote, err := NewRemoteStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.OnRemoteFailure == config.RemoteFailureFallbackLocal {
		return NewFallbackStore(remote, local), nil
	}
	return remote, nil
}
