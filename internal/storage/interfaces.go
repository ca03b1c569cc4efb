// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/quoteportal/rfq-service/internal/types"
)

type StorageInterface interface {
	CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	UpdateAgency(ctx context.Context, a *types.Agency, paths []string) error
	ListAgencies(ctx context.Context, filter OrgFilter) ([]*types.Agency, error)
	DeleteAgency(ctx context.Context, id string) error

	CreateSupplier(ctx context.Context, sup *types.Supplier) (*types.Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
	UpdateSupplier(ctx context.Context, sup *types.Supplier, paths []string) error
	ListSuppliers(ctx context.Context, filter OrgFilter) ([]*types.Supplier, error)
	ListSuppliersByIDs(ctx context.Context, ids []string) ([]*types.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, p *types.Profile, paths []string) error
	ListProfilesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Profile, error)

	CreateCategory(ctx context.Context, name string) (*types.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*types.Category, error)
	ListCategories(ctx context.Context) ([]*types.Category, error)
	SearchCategories(ctx context.Context, name string) ([]*types.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*types.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateImage(ctx context.Context, img *types.Image) (*types.Image, error)
	GetImageByID(ctx context.Context, id string) (*types.Image, error)
	ListImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Image, error)
	CountImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) (int64, error)
	UpdateImage(ctx context.Context, img *types.Image, paths []string) error
	UnfeatureImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) error
	SetImageFeatured(ctx context.Context, id string, featured bool) error
	DeleteImage(ctx context.Context, id string) error
	GetOldestImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error)
	GetFeaturedImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error)
	ListFeaturedImages(ctx context.Context, orgType types.OrgType, orgIDs []string) ([]*types.Image, error)

	CreateRfq(ctx context.Context, r *types.Rfq) (*types.Rfq, error)
	GetRfqByID(ctx context.Context, id string) (*types.Rfq, error)
	ListRfqsByAgency(ctx context.Context, agencyID string) ([]*types.Rfq, error)
	UpdateRfq(ctx context.Context, r *types.Rfq, paths []string) error
	DeleteRfq(ctx context.Context, id string) error

	CreateRfqInvite(ctx context.Context, rfqID, supplierID string) (*types.RfqInvite, error)
	GetRfqInviteByID(ctx context.Context, id string) (*types.RfqInvite, error)
	ListInvitesByRfq(ctx context.Context, rfqID string) ([]*types.RfqInvite, error)
	ListInvitesBySupplier(ctx context.Context, supplierID string) ([]*types.RfqInvite, error)
	UpdateInviteStatus(ctx context.Context, id string, status types.InviteStatus) error
	CloseInvitesByRfq(ctx context.Context, rfqID string) error

	CreateQuotation(ctx context.Context, q *types.Quotation) (*types.Quotation, error)
	GetQuotationByID(ctx context.Context, id string) (*types.Quotation, error)
	MarkQuotationsReplaced(ctx context.Context, rfqInviteID string) error
	ListQuotationsByInvite(ctx context.Context, rfqInviteID string) ([]*types.Quotation, error)
	ListQuotationsByRfq(ctx context.Context, rfqID string) ([]*types.Quotation, error)

	CreateOrgInvite(ctx context.Context, inv *types.OrgInvite) (*types.OrgInvite, error)
	GetOrgInviteByID(ctx context.Context, id string) (*types.OrgInvite, error)
	GetOrgInviteByTokenHash(ctx context.Context, tokenHash string) (*types.OrgInvite, error)
	MarkOrgInviteAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	ListOrgInvitesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.OrgInvite, error)
	DeleteOrgInvite(ctx context.Context, id string) error

	CreateWaitlistEntry(ctx context.Context, e *types.WaitlistEntry) (*types.WaitlistEntry, error)
	GetWaitlistEntryByEmail(ctx context.Context, email string) (*types.WaitlistEntry, error)
	ListWaitlistEntries(ctx context.Context, page Pagination) ([]*types.WaitlistEntry, error)
}
