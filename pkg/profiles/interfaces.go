// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/quoteportal/rfq-service/internal/types"
)

// Me is the caller's profile together with the organization it belongs to.
type Me struct {
	Profile  *types.Profile  `json:"profile"`
	Agency   *types.Agency   `json:"agency,omitempty"`
	Supplier *types.Supplier `json:"supplier,omitempty"`
}

type ServiceInterface interface {
	GetMe(ctx context.Context) (*Me, error)
	UpdateMe(ctx context.Context, firstName, lastName *string) (*types.Profile, error)
	PromoteAdmin(ctx context.Context) (*types.Profile, error)
}

type StorageInterface interface {
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	UpdateProfile(ctx context.Context, p *types.Profile, paths []string) error
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
}

type KratosInterface interface {
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
}
