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

var categoryColumns = []string{"id", "name", "created_at", "updated_at"}

func scanCategory(row sq.RowScanner) (*types.Category, error) {
	var c types.Category
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCategory(ctx context.Context, name string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCategory")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate category ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("categories").
		Columns("id", "name").
		Values(id.String(), name).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(categoryColumns))).
		QueryRowContext(ctx)

	c, err := scanCategory(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return c, nil
}

func (s *Storage) GetCategoryByID(ctx context.Context, id string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCategoryByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCategories(ctx context.Context) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCategories")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(categoryColumns...).
		From("categories").
		OrderBy("name ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*types.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

func (s *Storage) SearchCategories(ctx context.Context, name string) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SearchCategories")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(categoryColumns...).
		From("categories").
		Where(sq.ILike{"name": "%" + name + "%"}).
		OrderBy("name ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}
	defer rows.Close()

	var categories []*types.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id, name string) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCategory")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("categories").
		Set("name", name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(categoryColumns))).
		QueryRowContext(ctx)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return c, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCategory")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("categories").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
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
