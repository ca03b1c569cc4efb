// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

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
	kratos  KratosInterface
	mailer  EmailInterface
	authz   authorization.AuthorizerInterface

	// appBaseURL is the frontend origin the accept link points at.
	appBaseURL string
	// inviteTTL is how long an invitation stays acceptable.
	inviteTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	kratos KratosInterface,
	mailer EmailInterface,
	authz authorization.AuthorizerInterface,
	appBaseURL string,
	inviteTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		db:         dbClient,
		kratos:     kratos,
		mailer:     mailer,
		authz:      authz,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		inviteTTL:  inviteTTL,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (s *Service) CreateInvite(ctx context.Context, input *CreateInviteInput) (*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.CreateInvite")
	defer span.End()

	profile, orgType, orgID, err := s.callerOrg(ctx)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceTeam, authorization.ActionCreate, orgID) {
		return nil, types.NewPermissionDeniedError("only organization admins can invite members")
	}

	if !roleMatchesOrg(input.Role, orgType) {
		return nil, types.NewValidationError(
			fmt.Sprintf("role %s cannot be granted in a %s organization", input.Role, orgType),
		)
	}

	token, tokenHash, err := newInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	invite, err := s.storage.CreateOrgInvite(ctx, &types.OrgInvite{
		OrgType:   orgType,
		OrgID:     orgID,
		Email:     strings.ToLower(input.Email),
		Role:      input.Role,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.inviteTTL),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewConflictError("an invitation for this email is already pending")
		}
		return nil, err
	}

	s.ensureIdentity(ctx, invite.Email)
	s.sendInviteEmail(ctx, invite, token)

	return invite, nil
}

func (s *Service) AcceptInvite(ctx context.Context, token string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.AcceptInvite")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.InOrganization() {
		return nil, types.NewConflictError("User already belongs to an organization")
	}

	invite, err := s.storage.GetOrgInviteByTokenHash(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("invitation not found")
		}
		return nil, err
	}

	if invite.AcceptedAt != nil {
		return nil, types.NewConflictError("Invitation has already been accepted")
	}
	if time.Now().After(invite.ExpiresAt) {
		return nil, types.NewConflictError("Invitation has expired")
	}
	if !strings.EqualFold(invite.Email, profile.Email) {
		return nil, types.NewPermissionDeniedError("this invitation was issued to a different email address")
	}

	profile.Role = invite.Role
	paths := []string{"role"}
	switch invite.OrgType {
	case types.OrgTypeAgency:
		profile.AgencyID = &invite.OrgID
		paths = append(paths, "agency_id")
	case types.OrgTypeSupplier:
		profile.SupplierID = &invite.OrgID
		paths = append(paths, "supplier_id")
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UpdateProfile(ctx, profile, paths); err != nil {
			return err
		}
		return s.storage.MarkOrgInviteAccepted(ctx, invite.ID, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) ListInvites(ctx context.Context) ([]*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListInvites")
	defer span.End()

	profile, orgType, orgID, err := s.callerOrg(ctx)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccess(ctx, profile, authorization.ResourceTeam, authorization.ActionManage, orgID) {
		return nil, types.NewPermissionDeniedError("only organization admins can view pending invites")
	}

	return s.storage.ListOrgInvitesByOrg(ctx, orgType, orgID)
}

func (s *Service) DeleteInvite(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.DeleteInvite")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return err
	}

	invite, err := s.storage.GetOrgInviteByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("invitation not found")
		}
		return err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceTeam, authorization.ActionDelete, invite.OrgID) {
		return types.NewPermissionDeniedError("only organization admins can revoke invites")
	}

	return s.storage.DeleteOrgInvite(ctx, invite.ID)
}

func (s *Service) ListMembers(ctx context.Context) ([]*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListMembers")
	defer span.End()

	profile, orgType, orgID, err := s.callerOrg(ctx)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccess(ctx, profile, authorization.ResourceTeam, authorization.ActionView, orgID) {
		return nil, types.NewPermissionDeniedError("not allowed to view this team")
	}

	return s.storage.ListProfilesByOrg(ctx, orgType, orgID)
}

// ensureIdentity makes sure the invitee can sign in. For a brand-new email a
// Kratos identity is created and a recovery link generated so the identity
// provider delivers its credential-setup flow.
func (s *Service) ensureIdentity(ctx context.Context, email string) {
	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to look up identity for %s: %v", email, err)
		return
	}
	if identityID != "" {
		return
	}

	identityID, err = s.kratos.CreateIdentity(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to create identity for %s: %v", email, err)
		return
	}

	if _, _, err := s.kratos.CreateRecoveryLink(ctx, identityID, s.inviteTTL.String()); err != nil {
		s.logger.Errorf("failed to create recovery link for %s: %v", email, err)
	}
}

func (s *Service) sendInviteEmail(ctx context.Context, invite *types.OrgInvite, token string) {
	orgName, err := s.orgName(ctx, invite.OrgType, invite.OrgID)
	if err != nil {
		s.logger.Errorf("failed to resolve organization %s for invite email: %v", invite.OrgID, err)
		orgName = string(invite.OrgType)
	}

	inviteURL := fmt.Sprintf("%s/team/invites/accept?token=%s", s.appBaseURL, token)
	if err := s.mailer.SendOrgInviteEmail(ctx, invite.Email, orgName, string(invite.Role), inviteURL, invite.ExpiresAt); err != nil {
		s.logger.Errorf("failed to send invite email to %s: %v", invite.Email, err)
	}
}

func (s *Service) orgName(ctx context.Context, orgType types.OrgType, orgID string) (string, error) {
	switch orgType {
	case types.OrgTypeAgency:
		agency, err := s.storage.GetAgencyByID(ctx, orgID)
		if err != nil {
			return "", err
		}
		return agency.Name, nil
	case types.OrgTypeSupplier:
		supplier, err := s.storage.GetSupplierByID(ctx, orgID)
		if err != nil {
			return "", err
		}
		return supplier.Name, nil
	}
	return "", fmt.Errorf("unknown organization type %q", orgType)
}

// callerOrg resolves the caller's profile and the organization it belongs to.
func (s *Service) callerOrg(ctx context.Context) (*types.Profile, types.OrgType, string, error) {
	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, "", "", err
	}

	switch {
	case profile.AgencyID != nil:
		return profile, types.OrgTypeAgency, *profile.AgencyID, nil
	case profile.SupplierID != nil:
		return profile, types.OrgTypeSupplier, *profile.SupplierID, nil
	}

	return nil, "", "", types.NewPermissionDeniedError("user is not part of an organization")
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

func roleMatchesOrg(role types.Role, orgType types.OrgType) bool {
	switch orgType {
	case types.OrgTypeAgency:
		return role.IsAgency()
	case types.OrgTypeSupplier:
		return role.IsSupplier()
	}
	return false
}

// newInviteToken returns the raw token sent to the invitee and the hash
// persisted server-side. The raw token is never stored.
func newInviteToken() (string, string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token := hex.EncodeToString(buf)
	return token, hashToken(token), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
