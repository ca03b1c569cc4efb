// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqs

import (
	"context"
	"time"

	"github.com/quoteportal/rfq-service/internal/types"
)

// CreateRfqInput carries the fields of a new draft RFQ.
type CreateRfqInput struct {
	Title       string
	ClientName  string
	EventDates  *types.EventDates
	Venue       string
	Scope       string
	Attachments []string
	DeadlineAt  time.Time
}

// UpdateRfqInput carries the editable RFQ fields; nil means unchanged.
// Status may only move a sent RFQ to a terminal status; draft dispatch
// goes through SendRfq.
type UpdateRfqInput struct {
	Title      *string
	ClientName *string
	EventDates *types.EventDates
	Venue      *string
	Scope      *string
	DeadlineAt *time.Time
	Status     *types.RfqStatus
}

type ServiceInterface interface {
	CreateRfq(ctx context.Context, input *CreateRfqInput) (*types.Rfq, error)
	ListRfqs(ctx context.Context) ([]*types.Rfq, error)
	GetRfq(ctx context.Context, id string) (*types.Rfq, error)
	UpdateRfq(ctx context.Context, id string, input *UpdateRfqInput) (*types.Rfq, error)
	DeleteRfq(ctx context.Context, id string) error
	SendRfq(ctx context.Context, id string, supplierIDs []string) (*types.Rfq, error)
	AppendAttachments(ctx context.Context, id string, urls []string) (*types.Rfq, error)
	ListInvites(ctx context.Context, rfqID string) ([]*types.RfqInvite, error)
	ListQuotations(ctx context.Context, rfqID string) ([]*types.Quotation, error)
}

type StorageInterface interface {
	CreateRfq(ctx context.Context, r *types.Rfq) (*types.Rfq, error)
	GetRfqByID(ctx context.Context, id string) (*types.Rfq, error)
	ListRfqsByAgency(ctx context.Context, agencyID string) ([]*types.Rfq, error)
	UpdateRfq(ctx context.Context, r *types.Rfq, paths []string) error
	DeleteRfq(ctx context.Context, id string) error

	CreateRfqInvite(ctx context.Context, rfqID, supplierID string) (*types.RfqInvite, error)
	ListInvitesByRfq(ctx context.Context, rfqID string) ([]*types.RfqInvite, error)
	CloseInvitesByRfq(ctx context.Context, rfqID string) error
	ListQuotationsByRfq(ctx context.Context, rfqID string) ([]*types.Quotation, error)

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	GetAgencyByID(ctx context.Context, id string) (*types.Agency, error)
	GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error)
}

type EmailInterface interface {
	SendRfqInviteEmail(ctx context.Context, to, supplierName, rfqTitle, agencyName string, deadline time.Time) error
}
