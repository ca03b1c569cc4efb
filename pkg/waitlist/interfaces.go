// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package waitlist

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
)

type ServiceInterface interface {
	Join(ctx context.Context, entry *types.WaitlistEntry) (*types.WaitlistEntry, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
	ListEntries(ctx context.Context, page storage.Pagination) ([]*types.WaitlistEntry, error)
}

// StorageInterface is the subset of internal/storage used by this package.
type StorageInterface interface {
	CreateWaitlistEntry(ctx context.Context, e *types.WaitlistEntry) (*types.WaitlistEntry, error)
	GetWaitlistEntryByEmail(ctx context.Context, email string) (*types.WaitlistEntry, error)
	ListWaitlistEntries(ctx context.Context, page storage.Pagination) ([]*types.WaitlistEntry, error)
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
}

// EmailInterface is the subset of internal/mail used by this package.
type EmailInterface interface {
	SendWaitlistWelcomeEmail(ctx context.Context, to, fullName string) error
}
