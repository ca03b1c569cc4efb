// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"time"

	"github.com/quoteportal/rfq-service/internal/types"
)

// CreateInviteInput invites an email address into the caller's organization.
type CreateInviteInput struct {
	Email string
	Role  types.Role
}

type ServiceInterface interface {
	CreateInvite(ctx context.Context, input *CreateInviteInput) (*types.OrgInvite, error)
	AcceptInvite(ctx context.Context, token string) (*types.Profile, error)
	ListInvites(ctx context.Context) ([]*types.OrgInvite, error)
	DeleteInvite(ctx context.Context, id string) error
	ListMembers(ctx context.Context) ([]*types.Profile, error)
}

type StorageInterface interface {
	CreateOrgInvite(ctx context.Context, inv *types.OrgInvite) (*types.OrgInvite, error)
	GetOrgInviteByID(ctx context.Context, id string) (*types.OrgInvite, error)
	GetOrgInviteByTokenHash(ctx context.Context, tokenHash string) (*types.OrgInvite, error)
	MarkOrgInviteAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	ListOrgInvitesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.OrgInvite, error)
	DeleteOrgInvite(ctx context.Context, id string) error

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, p *types.Profile, paths []string) error
	ListProfilesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Profile, error)

	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
}

type KratosInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type EmailInterface interface {
	SendOrgInviteEmail(ctx context.Context, to, orgName, role, inviteURL string, expiresAt time.Time) error
}
