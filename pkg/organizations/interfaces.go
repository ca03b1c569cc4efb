// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
)

// OrgInput carries the writable fields of an agency or supplier profile.
type OrgInput struct {
	Name         string
	ContactName  string
	Email        string
	Phone        string
	Website      string
	LogoURL      string
	BrochureURL  string
	Location     *types.Location
	Categories   []string
	About        string
	ServicesText string
}

// AgencyListing is a published agency with its featured gallery image.
type AgencyListing struct {
	*types.Agency
	FeaturedImage *types.Image `json:"featured_image,omitempty"`
}

// SupplierListing is a published supplier with its featured gallery image.
type SupplierListing struct {
	*types.Supplier
	FeaturedImage *types.Image `json:"featured_image,omitempty"`
}

// Organization is the caller's organization and their role in it.
type Organization struct {
	OrgType  types.OrgType   `json:"org_type"`
	Role     types.Role      `json:"role"`
	Agency   *types.Agency   `json:"agency,omitempty"`
	Supplier *types.Supplier `json:"supplier,omitempty"`
}

type ServiceInterface interface {
	OnboardAgency(ctx context.Context, input *OrgInput) (*types.Agency, error)
	OnboardSupplier(ctx context.Context, input *OrgInput) (*types.Supplier, error)
	GetOrganization(ctx context.Context) (*Organization, error)

	ListAgencies(ctx context.Context, filter storage.OrgFilter) ([]*AgencyListing, error)
	GetAgency(ctx context.Context, id string) (*types.Agency, error)
	UpdateAgency(ctx context.Context, id string, input *OrgInput, paths []string) (*types.Agency, error)
	SetAgencyPublished(ctx context.Context, id string, published bool) error
	DeleteAgency(ctx context.Context, id string) error

	ListSuppliers(ctx context.Context, filter storage.OrgFilter) ([]*SupplierListing, error)
	GetSupplier(ctx context.Context, id string) (*types.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, input *OrgInput, paths []string) (*types.Supplier, error)
	SetSupplierPublished(ctx context.Context, id string, published bool) error
	DeleteSupplier(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	UpdateAgency(ctx context.Context, a *types.Agency, paths []string) error
	ListAgencies(ctx context.Context, filter storage.OrgFilter) ([]*types.Agency, error)
	DeleteAgency(ctx context.Context, id string) error

	CreateSupplier(ctx context.Context, sup *types.Supplier) (*types.Supplier, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
	UpdateSupplier(ctx context.Context, sup *types.Supplier, paths []string) error
	ListSuppliers(ctx context.Context, filter storage.OrgFilter) ([]*types.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, p *types.Profile, paths []string) error

	ListFeaturedImages(ctx context.Context, orgType types.OrgType, orgIDs []string) ([]*types.Image, error)
}
