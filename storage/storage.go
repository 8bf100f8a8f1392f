// Package storage persists attachment blobs to either a local directory or
// an S3-compatible object store and hands back a retrievable URL.
package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manivarun57/support-portal/apperrors"
)

// BlobStore stores a base64 (or data-URI) encoded blob under a generated key.
type BlobStore interface {
	Store(ctx context.Context, blob, filename, contentType string) (url string, size int64, err error)
}

// DecodeBlob strips an optional data-URI prefix, decodes the base64 payload
// and enforces the size limit. A decoded size exactly at max is accepted.
func DecodeBlob(blob string, max int64) ([]byte, error) {
	if idx := strings.Index(blob, ","); idx >= 0 && strings.HasPrefix(blob, "data:") {
		blob = blob[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return nil, apperrors.NewInvalidEncodingError("attachment must be Base64 encoded", err.Error())
	}
	if int64(len(data)) > max {
		return nil, apperrors.NewPayloadTooLargeError(
			fmt.Sprintf("attachment size %d exceeds limit %d", len(data), max))
	}
	return data, nil
}

// IsBase64Blob reports whether blob decodes as base64 after data-URI stripping.
func IsBase64Blob(blob string) bool {
	if idx := strings.Index(blob, ","); idx >= 0 && strings.HasPrefix(blob, "data:") {
		blob = blob[idx+1:]
	}
	_, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	return err == nil
}

// ObjectKey builds a collision-resistant key from a random token and the
// sanitized original filename.
func ObjectKey(filename string) string {
	return fmt.Sprintf("%s-%s", uuid.New().String(), SanitizeFilename(filename))
}

// SanitizeFilename strips path separators and parent references so a client
// supplied name cannot escape the storage root.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ReplaceAll(name, "..", "")
	if name == "" {
		name = "attachment"
	}
	return name
}
