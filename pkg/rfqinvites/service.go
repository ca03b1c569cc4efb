// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqinvites

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
	objects ObjectStoreInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	mailer EmailInterface,
	objects ObjectStoreInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		mailer:  mailer,
		objects: objects,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListMyInvites(ctx context.Context) ([]*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.ListMyInvites")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.SupplierID == nil {
		return nil, types.NewPermissionDeniedError("user is not part of a supplier")
	}

	return s.storage.ListInvitesBySupplier(ctx, *profile.SupplierID)
}

func (s *Service) GetInvite(ctx context.Context, id string) (*InviteDetail, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.GetInvite")
	defer span.End()

	profile, invite, rfq, err := s.loadInvite(ctx, id, authorization.ActionView)
	if err != nil {
		return nil, err
	}

	// A supplier opening their invite advances invited → opened. Concurrent
	// views are idempotent; the target state is the same.
	if s.isInviteSupplier(profile, invite) && invite.InviteStatus == types.InviteStatusInvited {
		if err := s.storage.UpdateInviteStatus(ctx, invite.ID, types.InviteStatusOpened); err != nil {
			return nil, err
		}
		invite.InviteStatus = types.InviteStatusOpened
	}

	return &InviteDetail{RfqInvite: invite, Rfq: rfq}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status types.InviteStatus) (*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.UpdateStatus")
	defer span.End()

	if status == types.InviteStatusSubmitted {
		return nil, types.NewValidationError("submitted is set by submitting a quotation")
	}

	_, invite, _, err := s.loadInvite(ctx, id, authorization.ActionEdit)
	if err != nil {
		return nil, err
	}

	if !invite.InviteStatus.CanTransitionTo(status) {
		return nil, types.NewConflictError(
			fmt.Sprintf("invite status cannot move from %s to %s", invite.InviteStatus, status),
		)
	}

	if err := s.storage.UpdateInviteStatus(ctx, invite.ID, status); err != nil {
		return nil, err
	}

	invite.InviteStatus = status
	return invite, nil
}

func (s *Service) SubmitQuotation(ctx context.Context, inviteID string, input *SubmitQuotationInput) (*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.SubmitQuotation")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.getInvite(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceQuotation, authorization.ActionCreate, invite.SupplierID) {
		return nil, types.NewPermissionDeniedError("only the invited supplier can submit a quotation")
	}

	if !invite.InviteStatus.CanTransitionTo(types.InviteStatusSubmitted) {
		return nil, types.NewConflictError("this invite is closed and no longer accepts quotations")
	}

	// A resubmission demotes the previous version and bumps the version
	// counter; all three writes land together.
	var quotation *types.Quotation
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.MarkQuotationsReplaced(ctx, invite.ID); err != nil {
			return err
		}

		quotation, err = s.storage.CreateQuotation(ctx, &types.Quotation{
			RfqInviteID: invite.ID,
			SupplierID:  invite.SupplierID,
			PdfURL:      input.PdfURL,
			Notes:       input.Notes,
		})
		if err != nil {
			return err
		}

		return s.storage.UpdateInviteStatus(ctx, invite.ID, types.InviteStatusSubmitted)
	})
	if err != nil {
		return nil, err
	}

	s.notifyAgency(ctx, invite)

	return quotation, nil
}

func (s *Service) ListQuotations(ctx context.Context, inviteID string) ([]*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.ListQuotations")
	defer span.End()

	if _, _, _, err := s.loadInvite(ctx, inviteID, authorization.ActionView); err != nil {
		return nil, err
	}

	return s.storage.ListQuotationsByInvite(ctx, inviteID)
}

// GetQuotationDownload resolves a quotation PDF to a short-lived signed
// download link. Both sides of the invite may fetch it.
func (s *Service) GetQuotationDownload(ctx context.Context, quotationID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "rfqinvites.Service.GetQuotationDownload")
	defer span.End()

	quotation, err := s.storage.GetQuotationByID(ctx, quotationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", types.NewNotFoundError("quotation not found")
		}
		return "", err
	}

	if _, _, _, err := s.loadInvite(ctx, quotation.RfqInviteID, authorization.ActionView); err != nil {
		return "", err
	}

	return s.objects.PresignedURL(ctx, quotation.PdfURL)
}

// notifyAgency emails the RFQ owner about a new quotation. Failures are
// logged; the submission has already been committed.
func (s *Service) notifyAgency(ctx context.Context, invite *types.RfqInvite) {
	rfq, err := s.storage.GetRfqByID(ctx, invite.RfqID)
	if err != nil {
		s.logger.Errorf("failed to resolve RFQ %s for quotation email: %v", invite.RfqID, err)
		return
	}

	agency, err := s.storage.GetAgencyByID(ctx, rfq.AgencyID)
	if err != nil {
		s.logger.Errorf("failed to resolve agency %s for quotation email: %v", rfq.AgencyID, err)
		return
	}

	supplierName := ""
	if supplier, err := s.storage.GetSupplierByID(ctx, invite.SupplierID); err == nil {
		supplierName = supplier.Name
	}

	if err := s.mailer.SendQuotationSubmittedEmail(ctx, agency.Email, supplierName, rfq.Title); err != nil {
		s.logger.Errorf("failed to send quotation email to %s: %v", agency.Email, err)
	}
}

// loadInvite fetches the invite and its RFQ and authorizes the caller
// against whichever side of the invite they belong to.
func (s *Service) loadInvite(ctx context.Context, id string, action authorization.Action) (*types.Profile, *types.RfqInvite, *types.Rfq, error) {
	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	invite, err := s.getInvite(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	rfq, err := s.storage.GetRfqByID(ctx, invite.RfqID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, types.NewNotFoundError("RFQ not found")
		}
		return nil, nil, nil, err
	}

	orgID := rfq.AgencyID
	if s.isInviteSupplier(profile, invite) {
		orgID = invite.SupplierID
	}
	if !s.authz.CanAccess(ctx, profile, authorization.ResourceRfqInvite, action, orgID) {
		return nil, nil, nil, types.NewPermissionDeniedError("not allowed to access this invite")
	}

	return profile, invite, rfq, nil
}

func (s *Service) isInviteSupplier(profile *types.Profile, invite *types.RfqInvite) bool {
	return profile.SupplierID != nil && *profile.SupplierID == invite.SupplierID
}

func (s *Service) getInvite(ctx context.Context, id string) (*types.RfqInvite, error) {
	invite, err := s.storage.GetRfqInviteByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("invite not found")
		}
		return nil, err
	}
	return invite, nil
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
