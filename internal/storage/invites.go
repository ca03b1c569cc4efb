// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/quoteportal/rfq-service/internal/types"
)

var orgInviteColumns = []string{
	"id", "org_type", "org_id", "email", "role", "token_hash",
	"expires_at", "accepted_at", "created_at",
}

func scanOrgInvite(row sq.RowScanner) (*types.OrgInvite, error) {
	var inv types.OrgInvite
	err := row.Scan(
		&inv.ID, &inv.OrgType, &inv.OrgID, &inv.Email, &inv.Role,
		&inv.TokenHash, &inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Storage) CreateOrgInvite(ctx context.Context, inv *types.OrgInvite) (*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrgInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("org_invites").
		Columns("id", "org_type", "org_id", "email", "role", "token_hash", "expires_at").
		Values(id.String(), inv.OrgType, inv.OrgID, inv.Email, inv.Role, inv.TokenHash, inv.ExpiresAt).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(orgInviteColumns))).
		QueryRowContext(ctx)

	created, err := scanOrgInvite(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return created, nil
}

func (s *Storage) GetOrgInviteByID(ctx context.Context, id string) (*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrgInviteByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(orgInviteColumns...).
		From("org_invites").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	inv, err := scanOrgInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return inv, nil
}

func (s *Storage) GetOrgInviteByTokenHash(ctx context.Context, tokenHash string) (*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrgInviteByTokenHash")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(orgInviteColumns...).
		From("org_invites").
		Where(sq.Eq{"token_hash": tokenHash}).
		QueryRowContext(ctx)

	inv, err := scanOrgInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return inv, nil
}

func (s *Storage) MarkOrgInviteAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkOrgInviteAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("org_invites").
		Set("accepted_at", acceptedAt).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invite accepted: %w", err)
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

func (s *Storage) ListOrgInvitesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.OrgInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrgInvitesByOrg")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(orgInviteColumns...).
		From("org_invites").
		Where(sq.Eq{"org_type": orgType, "org_id": orgID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.OrgInvite
	for rows.Next() {
		inv, err := scanOrgInvite(rows)
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

func (s *Storage) DeleteOrgInvite(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrgInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("org_invites").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
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
