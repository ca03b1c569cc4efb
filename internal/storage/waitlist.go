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

	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/types"
)

var waitlistColumns = []string{
	"id", "full_name", "email", "company_name", "role", "interests",
	"created_at", "updated_at",
}

func scanWaitlistEntry(row sq.RowScanner) (*types.WaitlistEntry, error) {
	var e types.WaitlistEntry
	err := row.Scan(
		&e.ID, &e.FullName, &e.Email, &e.CompanyName, &e.Role, &e.Interests,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Storage) CreateWaitlistEntry(ctx context.Context, e *types.WaitlistEntry) (*types.WaitlistEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWaitlistEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate waitlist ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("waitlist").
		Columns("id", "full_name", "email", "company_name", "role", "interests").
		Values(id.String(), e.FullName, e.Email, e.CompanyName, e.Role, e.Interests).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(waitlistColumns))).
		QueryRowContext(ctx)

	created, err := scanWaitlistEntry(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert waitlist entry: %w", err)
	}

	return created, nil
}

func (s *Storage) GetWaitlistEntryByEmail(ctx context.Context, email string) (*types.WaitlistEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWaitlistEntryByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(waitlistColumns...).
		From("waitlist").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx)

	e, err := scanWaitlistEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	return e, nil
}

func (s *Storage) ListWaitlistEntries(ctx context.Context, page Pagination) ([]*types.WaitlistEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWaitlistEntries")
	defer span.End()

	pageSize := db.PageSize(page.Size)
	rows, err := s.db.Statement(ctx).
		Select(waitlistColumns...).
		From("waitlist").
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page.Page, pageSize)).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.WaitlistEntry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}
