// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package waitlist

import (
	"context"
	"errors"
	"strings"

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
	mailer  EmailInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	mailer EmailInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		mailer:  mailer,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Join(ctx context.Context, entry *types.WaitlistEntry) (*types.WaitlistEntry, error) {
	ctx, span := s.tracer.Start(ctx, "waitlist.Service.Join")
	defer span.End()

	entry.Email = strings.ToLower(strings.TrimSpace(entry.Email))

	created, err := s.storage.CreateWaitlistEntry(ctx, entry)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewConflictError("This email is already on our waitlist")
		}
		return nil, err
	}

	// Welcome email is best effort, signup already succeeded.
	if err := s.mailer.SendWaitlistWelcomeEmail(ctx, created.Email, created.FullName); err != nil {
		s.logger.Errorf("failed to send waitlist welcome email: %v", err)
	}

	return created, nil
}

func (s *Service) CheckEmail(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "waitlist.Service.CheckEmail")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.storage.GetWaitlistEntryByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *Service) ListEntries(ctx context.Context, page storage.Pagination) ([]*types.WaitlistEntry, error) {
	ctx, span := s.tracer.Start(ctx, "waitlist.Service.ListEntries")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceWaitlist, authorization.ActionView, "") {
		return nil, types.NewPermissionDeniedError("only administrators can list waitlist entries")
	}

	return s.storage.ListWaitlistEntries(ctx, page)
}
