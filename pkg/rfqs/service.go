// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqs

import (
	"context"
	"errors"
	"fmt"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	mailer  EmailInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	mailer EmailInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		mailer:  mailer,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateRfq(ctx context.Context, input *CreateRfqInput) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.CreateRfq")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.AgencyID == nil {
		return nil, types.NewPermissionDeniedError("user must be part of an agency to create RFQs")
	}

	rfq := &types.Rfq{
		AgencyID:        *profile.AgencyID,
		CreatedByUserID: profile.UserID,
		Title:           input.Title,
		ClientName:      input.ClientName,
		EventDates:      input.EventDates,
		Venue:           input.Venue,
		Scope:           input.Scope,
		AttachmentsURL:  input.Attachments,
		DeadlineAt:      input.DeadlineAt,
		Status:          types.RfqStatusDraft,
	}

	return s.storage.CreateRfq(ctx, rfq)
}

func (s *Service) ListRfqs(ctx context.Context) ([]*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.ListRfqs")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.AgencyID == nil {
		return nil, types.NewPermissionDeniedError("user is not part of an agency")
	}

	return s.storage.ListRfqsByAgency(ctx, *profile.AgencyID)
}

func (s *Service) GetRfq(ctx context.Context, id string) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.GetRfq")
	defer span.End()

	return s.authorizedRfq(ctx, id, authorization.ActionView)
}

func (s *Service) UpdateRfq(ctx context.Context, id string, input *UpdateRfqInput) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.UpdateRfq")
	defer span.End()

	rfq, err := s.authorizedRfq(ctx, id, authorization.ActionEdit)
	if err != nil {
		return nil, err
	}

	var paths []string
	if input.Title != nil {
		rfq.Title = *input.Title
		paths = append(paths, "title")
	}
	if input.ClientName != nil {
		rfq.ClientName = *input.ClientName
		paths = append(paths, "client_name")
	}
	if input.EventDates != nil {
		rfq.EventDates = input.EventDates
		paths = append(paths, "event_dates")
	}
	if input.Venue != nil {
		rfq.Venue = *input.Venue
		paths = append(paths, "venue")
	}
	if input.Scope != nil {
		rfq.Scope = *input.Scope
		paths = append(paths, "scope")
	}
	if input.DeadlineAt != nil {
		rfq.DeadlineAt = *input.DeadlineAt
		paths = append(paths, "deadline_at")
	}

	closing := false
	if input.Status != nil && *input.Status != rfq.Status {
		if !input.Status.Valid() {
			return nil, types.NewValidationError(fmt.Sprintf("unknown RFQ status %q", *input.Status))
		}
		if rfq.Status != types.RfqStatusSent || !input.Status.Terminal() {
			return nil, types.NewConflictError(
				fmt.Sprintf("RFQ status cannot move from %s to %s", rfq.Status, *input.Status),
			)
		}
		rfq.Status = *input.Status
		paths = append(paths, "status")
		closing = true
	}

	if len(paths) == 0 {
		return rfq, nil
	}

	if closing {
		// A terminal status ends the tender for every invited supplier;
		// the status flip and the invite close-out commit together.
		err = s.db.WithTx(ctx, func(ctx context.Context) error {
			if err := s.storage.UpdateRfq(ctx, rfq, paths); err != nil {
				return err
			}
			return s.storage.CloseInvitesByRfq(ctx, rfq.ID)
		})
		if err != nil {
			return nil, err
		}
		return rfq, nil
	}

	if err := s.storage.UpdateRfq(ctx, rfq, paths); err != nil {
		return nil, err
	}

	return rfq, nil
}

func (s *Service) DeleteRfq(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.DeleteRfq")
	defer span.End()

	rfq, err := s.authorizedRfq(ctx, id, authorization.ActionDelete)
	if err != nil {
		return err
	}

	if rfq.Status != types.RfqStatusDraft {
		return types.NewConflictError("Only draft RFQs can be deleted")
	}

	return s.storage.DeleteRfq(ctx, id)
}

func (s *Service) SendRfq(ctx context.Context, id string, supplierIDs []string) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.SendRfq")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.AgencyID == nil {
		return nil, types.NewPermissionDeniedError("User must be part of an agency to create RFQ invites")
	}

	rfq, err := s.getRfq(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceRfq, authorization.ActionEdit, rfq.AgencyID) {
		return nil, types.NewPermissionDeniedError("not allowed to manage this RFQ")
	}

	if rfq.Status != types.RfqStatusDraft {
		return nil, types.NewConflictError("Only draft RFQs can be sent")
	}
	if len(supplierIDs) == 0 {
		return nil, types.NewValidationError("at least one supplier is required")
	}

	// The invite rows and the draft→sent flip are one transaction; a partial
	// dispatch never leaves a sent RFQ without its invites.
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		for _, supplierID := range supplierIDs {
			if _, err := s.storage.CreateRfqInvite(ctx, rfq.ID, supplierID); err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					continue
				}
				return err
			}
		}

		rfq.Status = types.RfqStatusSent
		return s.storage.UpdateRfq(ctx, rfq, []string{"status"})
	})
	if err != nil {
		return nil, err
	}

	s.notifySuppliers(ctx, rfq, supplierIDs)

	return rfq, nil
}

func (s *Service) AppendAttachments(ctx context.Context, id string, urls []string) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.AppendAttachments")
	defer span.End()

	rfq, err := s.authorizedRfq(ctx, id, authorization.ActionEdit)
	if err != nil {
		return nil, err
	}

	rfq.AttachmentsURL = append(rfq.AttachmentsURL, urls...)
	if err := s.storage.UpdateRfq(ctx, rfq, []string{"attachments_url"}); err != nil {
		return nil, err
	}

	return rfq, nil
}

func (s *Service) ListInvites(ctx context.Context, rfqID string) ([]*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.ListInvites")
	defer span.End()

	if _, err := s.authorizedRfq(ctx, rfqID, authorization.ActionView); err != nil {
		return nil, err
	}

	return s.storage.ListInvitesByRfq(ctx, rfqID)
}

func (s *Service) ListQuotations(ctx context.Context, rfqID string) ([]*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "rfqs.Service.ListQuotations")
	defer span.End()

	if _, err := s.authorizedRfq(ctx, rfqID, authorization.ActionView); err != nil {
		return nil, err
	}

	return s.storage.ListQuotationsByRfq(ctx, rfqID)
}

// notifySuppliers sends invite emails after dispatch. Email failures are
// logged and never fail the dispatch itself.
func (s *Service) notifySuppliers(ctx context.Context, rfq *types.Rfq, supplierIDs []string) {
	agencyName := ""
	if agency, err := s.storage.GetAgencyByID(ctx, rfq.AgencyID); err == nil {
		agencyName = agency.Name
	}

	for _, supplierID := range supplierIDs {
		supplier, err := s.storage.GetSupplierByID(ctx, supplierID)
		if err != nil {
			s.logger.Errorf("failed to resolve supplier %s for RFQ invite email: %v", supplierID, err)
			continue
		}
		if err := s.mailer.SendRfqInviteEmail(ctx, supplier.Email, supplier.Name, rfq.Title, agencyName, rfq.DeadlineAt); err != nil {
			s.logger.Errorf("failed to send RFQ invite email to %s: %v", supplier.Email, err)
		}
	}
}

func (s *Service) callerProfile(ctx context.Context) (*types.Profile, error) {
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

	return profile, nil
}

func (s *Service) getRfq(ctx context.Context, id string) (*types.Rfq, error) {
	rfq, err := s.storage.GetRfqByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("RFQ not found")
		}
		return nil, err
	}
	return rfq, nil
}

func (s *Service) authorizedRfq(ctx context.Context, id string, action authorization.Action) (*types.Rfq, error) {
	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	rfq, err := s.getRfq(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceRfq, action, rfq.AgencyID) {
		return nil, types.NewPermissionDeniedError("not allowed to manage this RFQ")
	}

	return rfq, nil
}
