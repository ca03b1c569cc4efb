// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	authz   authorization.AuthorizerInterface

	cacheTTL time.Duration
	mu       sync.RWMutex
	cached   []*types.Category
	cachedAt time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz authorization.AuthorizerInterface,
	cacheTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		cacheTTL: cacheTTL,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.ListCategories")
	defer span.End()

	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	categories, err := s.storage.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = categories
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return categories, nil
}

func (s *Service) SearchCategories(ctx context.Context, name string) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.SearchCategories")
	defer span.End()

	return s.storage.SearchCategories(ctx, name)
}

func (s *Service) GetCategory(ctx context.Context, id string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.GetCategory")
	defer span.End()

	category, err := s.storage.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("category not found")
		}
		return nil, err
	}

	return category, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.CreateCategory")
	defer span.End()

	if err := s.authorize(ctx, authorization.ActionCreate); err != nil {
		return nil, err
	}

	category, err := s.storage.CreateCategory(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewConflictError("category already exists")
		}
		return nil, err
	}

	s.invalidate()

	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id, name string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "categories.Service.UpdateCategory")
	defer span.End()

	if err := s.authorize(ctx, authorization.ActionEdit); err != nil {
		return nil, err
	}

	category, err := s.storage.UpdateCategory(ctx, id, name)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, types.NewNotFoundError("category not found")
		case errors.Is(err, storage.ErrDuplicateKey):
			return nil, types.NewConflictError("category already exists")
		}
		return nil, err
	}

	s.invalidate()

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "categories.Service.DeleteCategory")
	defer span.End()

	if err := s.authorize(ctx, authorization.ActionDelete); err != nil {
		return err
	}

	if err := s.storage.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("category not found")
		}
		return err
	}

	s.invalidate()

	return nil
}

func (s *Service) authorize(ctx context.Context, action authorization.Action) error {
	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceCategory, action, "") {
		return types.NewPermissionDeniedError("only administrators can manage categories")
	}

	return nil
}

func (s *Service) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
