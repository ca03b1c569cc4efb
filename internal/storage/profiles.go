// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/quoteportal/rfq-service/internal/types"
)

var profileColumns = []string{
	"user_id", "first_name", "last_name", "email", "role",
	"agency_id", "supplier_id", "created_at", "updated_at",
}

func scanProfile(row sq.RowScanner) (*types.Profile, error) {
	var p types.Profile
	err := row.Scan(
		&p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.Role,
		&p.AgencyID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("profiles").
		Columns("user_id", "first_name", "last_name", "email", "role", "agency_id", "supplier_id").
		Values(p.UserID, p.FirstName, p.LastName, p.Email, p.Role, p.AgencyID, p.SupplierID).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(profileColumns))).
		QueryRowContext(ctx)

	created, err := scanProfile(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return created, nil
}

func (s *Storage) GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByUserID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, p *types.Profile, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfile")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "first_name":
			updateMap["first_name"] = p.FirstName
		case "last_name":
			updateMap["last_name"] = p.LastName
		case "email":
			updateMap["email"] = p.Email
		case "role":
			updateMap["role"] = p.Role
		case "agency_id":
			updateMap["agency_id"] = p.AgencyID
		case "supplier_id":
			updateMap["supplier_id"] = p.SupplierID
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("profiles").
		SetMap(updateMap).
		Where(sq.Eq{"user_id": p.UserID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
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

func (s *Storage) ListProfilesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProfilesByOrg")
	defer span.End()

	column := "agency_id"
	if orgType == types.OrgTypeSupplier {
		column = "supplier_id"
	}

	rows, err := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{column: orgID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return profiles, nil
}
