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

var imageColumns = []string{
	"id", "organization_id", "organization_type", "file_name", "file_path",
	"file_url", "file_size", "mime_type", "alt_text", "caption",
	"is_featured", "sort_order", "created_at", "updated_at",
}

func scanImage(row sq.RowScanner) (*types.Image, error) {
	var img types.Image
	err := row.Scan(
		&img.ID, &img.OrganizationID, &img.OrganizationType, &img.FileName,
		&img.FilePath, &img.FileURL, &img.FileSize, &img.MimeType,
		&img.AltText, &img.Caption, &img.IsFeatured, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *Storage) CreateImage(ctx context.Context, img *types.Image) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateImage")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate image ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("gallery_images").
		Columns(
			"id", "organization_id", "organization_type", "file_name",
			"file_path", "file_url", "file_size", "mime_type", "alt_text",
			"caption", "is_featured", "sort_order",
		).
		Values(
			id.String(), img.OrganizationID, img.OrganizationType,
			img.FileName, img.FilePath, img.FileURL, img.FileSize,
			img.MimeType, img.AltText, img.Caption, img.IsFeatured,
			img.SortOrder,
		).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(imageColumns))).
		QueryRowContext(ctx)

	created, err := scanImage(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert image: %w", err)
	}

	return created, nil
}

func (s *Storage) GetImageByID(ctx context.Context, id string) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetImageByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(imageColumns...).
		From("gallery_images").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return img, nil
}

func (s *Storage) ListImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListImagesByOrg")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(imageColumns...).
		From("gallery_images").
		Where(sq.Eq{"organization_id": orgID, "organization_type": orgType}).
		OrderBy("sort_order ASC", "created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var images []*types.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return images, nil
}

func (s *Storage) CountImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountImagesByOrg")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("gallery_images").
		Where(sq.Eq{"organization_id": orgID, "organization_type": orgType}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}

	return count, nil
}

func (s *Storage) UpdateImage(ctx context.Context, img *types.Image, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateImage")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "alt_text":
			updateMap["alt_text"] = img.AltText
		case "caption":
			updateMap["caption"] = img.Caption
		case "sort_order":
			updateMap["sort_order"] = img.SortOrder
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("gallery_images").
		SetMap(updateMap).
		Where(sq.Eq{"id": img.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update image: %w", err)
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

// UnfeatureImagesByOrg clears the featured flag on every image of the
// organization. Callers pair it with SetImageFeatured inside a transaction so
// exactly one image ends up featured.
func (s *Storage) UnfeatureImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnfeatureImagesByOrg")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("gallery_images").
		Set("is_featured", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": orgID, "organization_type": orgType, "is_featured": true}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to unfeature images: %w", err)
	}

	return nil
}

func (s *Storage) SetImageFeatured(ctx context.Context, id string, featured bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetImageFeatured")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("gallery_images").
		Set("is_featured", featured).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set featured image: %w", err)
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

func (s *Storage) DeleteImage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteImage")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("gallery_images").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
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

func (s *Storage) GetFeaturedImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFeaturedImageByOrg")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(imageColumns...).
		From("gallery_images").
		Where(sq.Eq{"organization_id": orgID, "organization_type": orgType, "is_featured": true}).
		QueryRowContext(ctx)

	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get featured image: %w", err)
	}

	return img, nil
}

// ListFeaturedImages returns the featured image of each listed organization.
func (s *Storage) ListFeaturedImages(ctx context.Context, orgType types.OrgType, orgIDs []string) ([]*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListFeaturedImages")
	defer span.End()

	if len(orgIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(imageColumns...).
		From("gallery_images").
		Where(sq.Eq{"organization_id": orgIDs, "organization_type": orgType, "is_featured": true}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list featured images: %w", err)
	}
	defer rows.Close()

	var images []*types.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return images, nil
}

// GetOldestImageByOrg returns the earliest uploaded image for an org, used to
// promote a replacement featured image after a delete.
func (s *Storage) GetOldestImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOldestImageByOrg")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(imageColumns...).
		From("gallery_images").
		Where(sq.Eq{"organization_id": orgID, "organization_type": orgType}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	img, err := scanImage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	return img, nil
}
