// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"io"
)

// ObjectStoreInterface stores uploaded files in an S3-compatible bucket.
type ObjectStoreInterface interface {
	// Upload writes the object and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	// PublicURL resolves a stored key to a URL servable to clients.
	PublicURL(key string) string
	// PresignedURL exchanges a stored object's public URL for a
	// time-limited signed download link.
	PresignedURL(ctx context.Context, fileURL string) (string, error)
}
