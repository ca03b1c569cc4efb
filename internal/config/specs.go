// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AppBaseURL is the public frontend origin, used in invite links and
	// transactional email.
	AppBaseURL string `envconfig:"app_base_url" default:"http://localhost:3000"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"http://localhost:3000"`

	MailEnabled     bool   `envconfig:"mail_enabled" default:"false"`
	MailFromAddress string `envconfig:"mail_from_address" default:"no-reply@quoteportal.io"`
	MailFromName    string `envconfig:"mail_from_name" default:"Quote Portal"`
	MailReplyTo     string `envconfig:"mail_reply_to"`
	AWSRegion       string `envconfig:"aws_region" default:"eu-west-1"`
	AWSAccessKeyID  string `envconfig:"aws_access_key_id"`
	AWSSecretKey    string `envconfig:"aws_secret_access_key"`

	StorageBucket        string        `envconfig:"storage_bucket" default:"quoteportal-uploads"`
	StorageEndpoint      string        `envconfig:"storage_endpoint"`
	StorageAccessKeyID   string        `envconfig:"storage_access_key_id"`
	StorageSecretKey     string        `envconfig:"storage_secret_access_key"`
	StoragePublicBaseURL string        `envconfig:"storage_public_base_url"`
	StoragePresignExpiry time.Duration `envconfig:"storage_presign_expiry" default:"15m"`

	CategoryCacheTTL time.Duration `envconfig:"category_cache_ttl" default:"5m"`
}
