// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqinvites

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/types"
)

// InviteDetail is an invite joined with its parent RFQ.
type InviteDetail struct {
	*types.RfqInvite
	Rfq *types.Rfq `json:"rfq"`
}

// SubmitQuotationInput carries a supplier's quotation for one invite.
type SubmitQuotationInput struct {
	PdfURL string
	Notes  string
}

type ServiceInterface interface {
	ListMyInvites(ctx context.Context) ([]*types.RfqInvite, error)
	GetInvite(ctx context.Context, id string) (*InviteDetail, error)
	UpdateStatus(ctx context.Context, id string, status types.InviteStatus) (*types.RfqInvite, error)
	SubmitQuotation(ctx context.Context, inviteID string, input *SubmitQuotationInput) (*types.Quotation, error)
	ListQuotations(ctx context.Context, inviteID string) ([]*types.Quotation, error)
	GetQuotationDownload(ctx context.Context, quotationID string) (string, error)
}

type StorageInterface interface {
	GetRfqInviteByID(ctx context.Context, id string) (*types.RfqInvite, error)
	ListInvitesBySupplier(ctx context.Context, supplierID string) ([]*types.RfqInvite, error)
	UpdateInviteStatus(ctx context.Context, id string, status types.InviteStatus) error

	GetRfqByID(ctx context.Context, id string) (*types.Rfq, error)

	CreateQuotation(ctx context.Context, q *types.Quotation) (*types.Quotation, error)
	GetQuotationByID(ctx context.Context, id string) (*types.Quotation, error)
	MarkQuotationsReplaced(ctx context.Context, rfqInviteID string) error
	ListQuotationsByInvite(ctx context.Context, rfqInviteID string) ([]*types.Quotation, error)

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
}

type EmailInterface interface {
	SendQuotationSubmittedEmail(ctx context.Context, to, supplierName, rfqTitle string) error
}

// ObjectStoreInterface is the subset of internal/objectstore used by this package.
type ObjectStoreInterface interface {
	PresignedURL(ctx context.Context, fileURL string) (string, error)
}
