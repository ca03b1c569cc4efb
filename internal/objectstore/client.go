// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

var _ ObjectStoreInterface = (*Client)(nil)

type Config struct {
	Bucket      string
	AccessKeyID string
	SecretKey   string
	// Endpoint overrides the S3 endpoint, e.g. for Cloudflare R2.
	Endpoint string
	// PublicBaseURL is the CDN or bucket origin objects are served from.
	PublicBaseURL string
	// PresignExpiry bounds how long signed download links stay valid.
	PresignExpiry time.Duration
}

type Client struct {
	s3      *s3.Client
	presign *s3.PresignClient
	bucket  string

	publicBaseURL string
	presignExpiry time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("object storage credentials are not configured")
	}

	cred := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")

	// R2 ignores the region but the SDK requires one.
	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithCredentialsProvider(cred),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
		}
		o.UsePathStyle = true
	})

	c := new(Client)
	c.s3 = s3Client
	c.presign = s3.NewPresignClient(s3Client)
	c.bucket = cfg.Bucket
	c.publicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")
	c.presignExpiry = cfg.PresignExpiry
	if c.presignExpiry <= 0 {
		c.presignExpiry = 15 * time.Minute
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}

func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	ctx, span := c.tracer.Start(ctx, "objectstore.Client.Upload")
	defer span.End()

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &c.bucket,
		Key:           &key,
		Body:          body,
		ContentType:   &contentType,
		ContentLength: &size,
	})
	if err != nil {
		c.logger.Errorf("failed to upload object %s: %v", key, err)
		return "", types.NewUpstreamError("failed to store file", err)
	}

	return c.PublicURL(key), nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	ctx, span := c.tracer.Start(ctx, "objectstore.Client.Delete")
	defer span.End()

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	if err != nil {
		c.logger.Errorf("failed to delete object %s: %v", key, err)
		return types.NewUpstreamError("failed to delete file", err)
	}

	return nil
}

func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", c.publicBaseURL, key)
}

func (c *Client) PresignedURL(ctx context.Context, fileURL string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "objectstore.Client.PresignedURL")
	defer span.End()

	key := strings.TrimPrefix(fileURL, c.publicBaseURL+"/")
	if key == fileURL || key == "" {
		return "", types.NewValidationError("file is not stored in this bucket")
	}

	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(c.presignExpiry))
	if err != nil {
		c.logger.Errorf("failed to presign object %s: %v", key, err)
		return "", types.NewUpstreamError("failed to sign download link", err)
	}

	return req.URL, nil
}
