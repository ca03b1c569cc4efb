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

var quotationColumns = []string{
	"id", "rfq_invite_id", "supplier_id", "pdf_url", "notes",
	"submitted_at", "status", "version",
}

func scanQuotation(row sq.RowScanner) (*types.Quotation, error) {
	var q types.Quotation
	err := row.Scan(
		&q.ID, &q.RfqInviteID, &q.SupplierID, &q.PdfURL, &q.Notes,
		&q.SubmittedAt, &q.Status, &q.Version,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuotation inserts a new submitted quotation, versioned one past the
// invite's current maximum. Callers run it inside a transaction together
// with MarkQuotationsReplaced.
func (s *Storage) CreateQuotation(ctx context.Context, q *types.Quotation) (*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateQuotation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("quotations").
		Columns("id", "rfq_invite_id", "supplier_id", "pdf_url", "notes", "submitted_at", "status", "version").
		Values(
			id.String(), q.RfqInviteID, q.SupplierID, q.PdfURL, q.Notes,
			sq.Expr("NOW()"), types.QuotationStatusSubmitted,
			sq.Expr("(SELECT COALESCE(MAX(version), 0) + 1 FROM quotations WHERE rfq_invite_id = ?)", q.RfqInviteID),
		).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(quotationColumns))).
		QueryRowContext(ctx)

	created, err := scanQuotation(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert quotation: %w", err)
	}

	return created, nil
}

func (s *Storage) GetQuotationByID(ctx context.Context, id string) (*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetQuotationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(quotationColumns...).
		From("quotations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}

	return q, nil
}

// MarkQuotationsReplaced demotes all submitted quotations of the invite.
func (s *Storage) MarkQuotationsReplaced(ctx context.Context, rfqInviteID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkQuotationsReplaced")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("quotations").
		Set("status", types.QuotationStatusReplaced).
		Where(sq.Eq{"rfq_invite_id": rfqInviteID, "status": types.QuotationStatusSubmitted}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark quotations replaced: %w", err)
	}

	return nil
}

func (s *Storage) ListQuotationsByInvite(ctx context.Context, rfqInviteID string) ([]*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListQuotationsByInvite")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(quotationColumns...).
		From("quotations").
		Where(sq.Eq{"rfq_invite_id": rfqInviteID}).
		OrderBy("version DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*types.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return quotations, nil
}

// ListQuotationsByRfq returns the live quotation of every invite on the RFQ.
func (s *Storage) ListQuotationsByRfq(ctx context.Context, rfqID string) ([]*types.Quotation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListQuotationsByRfq")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(
			"q.id", "q.rfq_invite_id", "q.supplier_id", "q.pdf_url", "q.notes",
			"q.submitted_at", "q.status", "q.version",
		).
		From("quotations q").
		Join("rfq_invites i ON q.rfq_invite_id = i.id").
		Where(sq.Eq{"i.rfq_id": rfqID, "q.status": types.QuotationStatusSubmitted}).
		OrderBy("q.submitted_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*types.Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation: %w", err)
		}
		quotations = append(quotations, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return quotations, nil
}
