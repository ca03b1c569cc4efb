// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions a profile for a freshly registered Kratos
// identity. A profile that already exists (e.g. the lazy-creation path ran
// first) is not an error.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity.ID == "" || identity.Traits.Email == "" {
		return nil, types.NewValidationError("identity id and email are required")
	}

	profile, err := s.storage.CreateProfile(ctx, &types.Profile{
		UserID:    identity.ID,
		Email:     identity.Traits.Email,
		FirstName: identity.Traits.FirstName,
		LastName:  identity.Traits.LastName,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Debugf("profile for identity %s already exists", identity.ID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create profile for identity %s: %w", identity.ID, err)
	}

	s.logger.Infof("provisioned profile for identity %s", identity.ID)
	return profile, nil
}

// HandleEmailEvent logs an inbound delivery event from the email provider.
func (s *Service) HandleEmailEvent(ctx context.Context, event *EmailEvent) error {
	_, span := s.tracer.Start(ctx, "webhooks.Service.HandleEmailEvent")
	defer span.End()

	if !event.Type.Valid() {
		return types.NewValidationError(fmt.Sprintf("unknown email event type %q", event.Type))
	}

	switch event.Type {
	case EmailEventBounce, EmailEventSpamComplaint:
		s.logger.Warnf("email %s event for %s (message %s)", event.Type, event.Recipient, event.MessageID)
	default:
		s.logger.Infof("email %s event for %s (message %s)", event.Type, event.Recipient, event.MessageID)
	}

	return nil
}
