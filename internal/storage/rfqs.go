// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quoteportal/rfq-service/internal/types"
)

var rfqColumns = []string{
	"id", "agency_id", "created_by_user_id", "title", "client_name",
	"event_dates", "venue", "scope", "attachments_url", "deadline_at",
	"status", "created_at", "updated_at",
}

var rfqInviteColumns = []string{
	"id", "rfq_id", "supplier_id", "invite_status", "last_activity_at", "created_at",
}

func scanRfq(row sq.RowScanner) (*types.Rfq, error) {
	var r types.Rfq
	r.EventDates = new(types.EventDates)
	err := row.Scan(
		&r.ID, &r.AgencyID, &r.CreatedByUserID, &r.Title, &r.ClientName,
		r.EventDates, &r.Venue, &r.Scope, &r.AttachmentsURL, &r.DeadlineAt,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanRfqInvite(row sq.RowScanner) (*types.RfqInvite, error) {
	var inv types.RfqInvite
	err := row.Scan(
		&inv.ID, &inv.RfqID, &inv.SupplierID, &inv.InviteStatus,
		&inv.LastActivityAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateRfq(ctx context.Context, r *types.Rfq) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRfq")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate RFQ ID: %w", err)
	}

	eventDates := r.EventDates
	if eventDates == nil {
		eventDates = new(types.EventDates)
	}

	row := s.db.Statement(ctx).
		Insert("rfqs").
		Columns(
			"id", "agency_id", "created_by_user_id", "title", "client_name",
			"event_dates", "venue", "scope", "attachments_url", "deadline_at",
			"status",
		).
		Values(
			id.String(), r.AgencyID, r.CreatedByUserID, r.Title, r.ClientName,
			eventDates, r.Venue, r.Scope, r.AttachmentsURL, r.DeadlineAt,
			r.Status,
		).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(rfqColumns))).
		QueryRowContext(ctx)

	created, err := scanRfq(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert RFQ: %w", err)
	}

	return created, nil
}

func (s *Storage) GetRfqByID(ctx context.Context, id string) (*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRfqByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(rfqColumns...).
		From("rfqs").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanRfq(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get RFQ: %w", err)
	}

	return r, nil
}

func (s *Storage) ListRfqsByAgency(ctx context.Context, agencyID string) ([]*types.Rfq, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRfqsByAgency")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(rfqColumns...).
		From("rfqs").
		Where(sq.Eq{"agency_id": agencyID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list RFQs: %w", err)
	}
	defer rows.Close()

	var rfqs []*types.Rfq
	for rows.Next() {
		r, err := scanRfq(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan RFQ: %w", err)
		}
		rfqs = append(rfqs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rfqs, nil
}

func (s *Storage) UpdateRfq(ctx context.Context, r *types.Rfq, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRfq")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = r.Title
		case "client_name":
			updateMap["client_name"] = r.ClientName
		case "event_dates":
			updateMap["event_dates"] = r.EventDates
		case "venue":
			updateMap["venue"] = r.Venue
		case "scope":
			updateMap["scope"] = r.Scope
		case "attachments_url":
			updateMap["attachments_url"] = r.AttachmentsURL
		case "deadline_at":
			updateMap["deadline_at"] = r.DeadlineAt
		case "status":
			updateMap["status"] = r.Status
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("rfqs").
		SetMap(updateMap).
		Where(sq.Eq{"id": r.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update RFQ: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteRfq(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRfq")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("rfqs").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete RFQ: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateRfqInvite(ctx context.Context, rfqID, supplierID string) (*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRfqInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("rfq_invites").
		Columns("id", "rfq_id", "supplier_id", "invite_status").
		Values(id.String(), rfqID, supplierID, types.InviteStatusInvited).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(rfqInviteColumns))).
		QueryRowContext(ctx)

	inv, err := scanRfqInvite(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return inv, nil
}

func (s *Storage) GetRfqInviteByID(ctx context.Context, id string) (*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRfqInviteByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(rfqInviteColumns...).
		From("rfq_invites").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	inv, err := scanRfqInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListInvitesByRfq(ctx context.Context, rfqID string) ([]*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByRfq")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(rfqInviteColumns...).
		From("rfq_invites").
		Where(sq.Eq{"rfq_id": rfqID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.RfqInvite
	for rows.Next() {
		inv, err := scanRfqInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) ListInvitesBySupplier(ctx context.Context, supplierID string) ([]*types.RfqInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesBySupplier")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(rfqInviteColumns...).
		From("rfq_invites").
		Where(sq.Eq{"supplier_id": supplierID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.RfqInvite
	for rows.Next() {
		inv, err := scanRfqInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

// UpdateInviteStatus sets the invite status and refreshes last_activity_at.
func (s *Storage) UpdateInviteStatus(ctx context.Context, id string, status types.InviteStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInviteStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("rfq_invites").
		Set("invite_status", status).
		Set("last_activity_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// CloseInvitesByRfq marks every invite of the RFQ closed.
func (s *Storage) CloseInvitesByRfq(ctx context.Context, rfqID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.CloseInvitesByRfq")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("rfq_invites").
		Set("invite_status", types.InviteStatusClosed).
		Set("last_activity_at", sq.Expr("NOW()")).
		Where(sq.Eq{"rfq_id": rfqID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to close invites: %w", err)
	}

	return nil
}
