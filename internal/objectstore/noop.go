// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/quoteportal/rfq-service/internal/logging"
)

var _ ObjectStoreInterface = (*NoopClient)(nil)

// NoopClient discards uploads, for environments without bucket credentials.
type NoopClient struct {
	logger logging.LoggerInterface
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	c.logger.Infof("object storage disabled, discarding upload %s", key)
	return c.PublicURL(key), nil
}

func (c *NoopClient) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NoopClient) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.invalid/%s", key)
}

func (c *NoopClient) PresignedURL(ctx context.Context, fileURL string) (string, error) {
	return fileURL, nil
}
