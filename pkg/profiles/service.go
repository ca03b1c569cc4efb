// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"

	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	kratos  KratosInterface

	// selfPromotion gates the dev-only admin promotion endpoint.
	selfPromotion bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kratos KratosInterface,
	selfPromotion bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:       storage,
		kratos:        kratos,
		selfPromotion: selfPromotion,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (s *Service) GetMe(ctx context.Context) (*Me, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.GetMe")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.getOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	me := &Me{Profile: profile}

	if profile.AgencyID != nil {
		agency, err := s.storage.GetAgencyByID(ctx, *profile.AgencyID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		me.Agency = agency
	}

	if profile.SupplierID != nil {
		supplier, err := s.storage.GetSupplierByID(ctx, *profile.SupplierID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		me.Supplier = supplier
	}

	return me, nil
}

func (s *Service) UpdateMe(ctx context.Context, firstName, lastName *string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.UpdateMe")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("profile not found")
		}
		return nil, err
	}

	var paths []string
	if firstName != nil {
		profile.FirstName = *firstName
		paths = append(paths, "first_name")
	}
	if lastName != nil {
		profile.LastName = *lastName
		paths = append(paths, "last_name")
	}

	if len(paths) == 0 {
		return profile, nil
	}

	if err := s.storage.UpdateProfile(ctx, profile, paths); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) PromoteAdmin(ctx context.Context) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.PromoteAdmin")
	defer span.End()

	if !s.selfPromotion {
		return nil, types.NewPermissionDeniedError("self promotion is disabled")
	}

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("profile not found")
		}
		return nil, err
	}

	profile.Role = types.RoleAdmin
	if err := s.storage.UpdateProfile(ctx, profile, []string{"role"}); err != nil {
		return nil, err
	}

	s.logger.Infof("user %s promoted to admin", userID)

	return profile, nil
}

// getOrCreateProfile lazily creates a profile on first authenticated request,
// resolving name and email from the Kratos identity.
func (s *Service) getOrCreateProfile(ctx context.Context, userID string) (*types.Profile, error) {
	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	identity, err := s.kratos.GetIdentity(ctx, userID)
	if err != nil {
		return nil, types.NewUpstreamError("failed to resolve identity", err)
	}

	p := &types.Profile{UserID: userID}
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		p.Email, _ = traits["email"].(string)
		if name, ok := traits["name"].(map[string]interface{}); ok {
			p.FirstName, _ = name["first"].(string)
			p.LastName, _ = name["last"].(string)
		}
	}

	created, err := s.storage.CreateProfile(ctx, p)
	if err != nil {
		// A concurrent first request may have created it already.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return s.storage.GetProfileByUserID(ctx, userID)
		}
		return nil, err
	}

	return created, nil
}
