// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/types"
)

// StorageInterface is the subset of internal/storage the webhook handlers
// need.
type StorageInterface interface {
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.Profile, error)
	HandleEmailEvent(ctx context.Context, event *EmailEvent) error
}
