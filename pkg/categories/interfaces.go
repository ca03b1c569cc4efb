// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/types"
)

type ServiceInterface interface {
	ListCategories(ctx context.Context) ([]*types.Category, error)
	SearchCategories(ctx context.Context, name string) ([]*types.Category, error)
	GetCategory(ctx context.Context, id string) (*types.Category, error)
	CreateCategory(ctx context.Context, name string) (*types.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*types.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateCategory(ctx context.Context, name string) (*types.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*types.Category, error)
	ListCategories(ctx context.Context) ([]*types.Category, error)
	SearchCategories(ctx context.Context, name string) ([]*types.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*types.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
}
