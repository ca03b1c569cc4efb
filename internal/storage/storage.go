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
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var agencyColumns = []string{
	"id", "name", "contact_name", "email", "phone", "logo_url", "website",
	"location", "interest_categories", "about", "is_published", "status",
	"created_at", "updated_at",
}

var supplierColumns = []string{
	"id", "name", "contact_name", "email", "phone", "logo_url", "brochure_url",
	"location", "service_categories", "services_text", "is_published", "status",
	"created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanAgency(row sq.RowScanner) (*types.Agency, error) {
	var a types.Agency
	a.Location = new(types.Location)
	err := row.Scan(
		&a.ID, &a.Name, &a.ContactName, &a.Email, &a.Phone, &a.LogoURL,
		&a.Website, a.Location, &a.InterestCategories, &a.About,
		&a.IsPublished, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanSupplier(row sq.RowScanner) (*types.Supplier, error) {
	var s types.Supplier
	s.Location = new(types.Location)
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Email, &s.Phone, &s.LogoURL,
		&s.BrochureURL, s.Location, &s.ServiceCategories, &s.ServicesText,
		&s.IsPublished, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Storage) CreateAgency(ctx context.Context, a *types.Agency) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAgency")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agency ID: %w", err)
	}

	location := a.Location
	if location == nil {
		location = new(types.Location)
	}

	row := s.db.Statement(ctx).
		Insert("agencies").
		Columns(
			"id", "name", "contact_name", "email", "phone", "logo_url",
			"website", "location", "interest_categories", "about",
			"is_published", "status",
		).
		Values(
			id.String(), a.Name, a.ContactName, a.Email, a.Phone, a.LogoURL,
			a.Website, location, a.InterestCategories, a.About,
			a.IsPublished, a.Status,
		).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(agencyColumns))).
		QueryRowContext(ctx)

	created, err := scanAgency(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert agency: %w", err)
	}

	return created, nil
}

func (s *Storage) GetAgencyByID(ctx context.Context, id string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAgencyByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(agencyColumns...).
		From("agencies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanAgency(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return a, nil
}

// UpdateAgency updates only the fields named in paths, PATCH style.
func (s *Storage) UpdateAgency(ctx context.Context, a *types.Agency, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAgency")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = a.Name
		case "contact_name":
			updateMap["contact_name"] = a.ContactName
		case "phone":
			updateMap["phone"] = a.Phone
		case "logo_url":
			updateMap["logo_url"] = a.LogoURL
		case "website":
			updateMap["website"] = a.Website
		case "location":
			updateMap["location"] = a.Location
		case "interest_categories":
			updateMap["interest_categories"] = a.InterestCategories
		case "about":
			updateMap["about"] = a.About
		case "is_published":
			updateMap["is_published"] = a.IsPublished
		case "status":
			updateMap["status"] = a.Status
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("agencies").
		SetMap(updateMap).
		Where(sq.Eq{"id": a.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update agency: %w", err)
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

func (s *Storage) ListAgencies(ctx context.Context, filter OrgFilter) ([]*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAgencies")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(agencyColumns...).
		From("agencies").
		OrderBy("created_at DESC")

	if filter.PublishedOnly {
		query = query.Where(sq.Eq{"is_published": true, "status": types.OrgStatusActive})
	}
	if filter.Name != "" {
		query = query.Where(sq.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.CategoryID != "" {
		query = query.Where(sq.Expr("interest_categories @> ?::jsonb", jsonArray(filter.CategoryID)))
	}

	pageSize := db.PageSize(filter.Size)
	query = query.Limit(pageSize).Offset(db.Offset(filter.Page, pageSize))

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*types.Agency
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agencies, nil
}

func (s *Storage) DeleteAgency(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAgency")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("agencies").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
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

func (s *Storage) CreateSupplier(ctx context.Context, sup *types.Supplier) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSupplier")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier ID: %w", err)
	}

	location := sup.Location
	if location == nil {
		location = new(types.Location)
	}

	row := s.db.Statement(ctx).
		Insert("suppliers").
		Columns(
			"id", "name", "contact_name", "email", "phone", "logo_url",
			"brochure_url", "location", "service_categories", "services_text",
			"is_published", "status",
		).
		Values(
			id.String(), sup.Name, sup.ContactName, sup.Email, sup.Phone,
			sup.LogoURL, sup.BrochureURL, location, sup.ServiceCategories,
			sup.ServicesText, sup.IsPublished, sup.Status,
		).
		Suffix(fmt.Sprintf("RETURNING %s", columnList(supplierColumns))).
		QueryRowContext(ctx)

	created, err := scanSupplier(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert supplier: %w", err)
	}

	return created, nil
}

func (s *Storage) GetSupplierByID(ctx context.Context, id string) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSupplierByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	sup, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	return sup, nil
}

func (s *Storage) UpdateSupplier(ctx context.Context, sup *types.Supplier, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSupplier")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = sup.Name
		case "contact_name":
			updateMap["contact_name"] = sup.ContactName
		case "phone":
			updateMap["phone"] = sup.Phone
		case "logo_url":
			updateMap["logo_url"] = sup.LogoURL
		case "brochure_url":
			updateMap["brochure_url"] = sup.BrochureURL
		case "location":
			updateMap["location"] = sup.Location
		case "service_categories":
			updateMap["service_categories"] = sup.ServiceCategories
		case "services_text":
			updateMap["services_text"] = sup.ServicesText
		case "is_published":
			updateMap["is_published"] = sup.IsPublished
		case "status":
			updateMap["status"] = sup.Status
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("suppliers").
		SetMap(updateMap).
		Where(sq.Eq{"id": sup.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
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

func (s *Storage) ListSuppliers(ctx context.Context, filter OrgFilter) ([]*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSuppliers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(supplierColumns...).
		From("suppliers").
		OrderBy("created_at DESC")

	if filter.PublishedOnly {
		query = query.Where(sq.Eq{"is_published": true, "status": types.OrgStatusActive})
	}
	if filter.Name != "" {
		query = query.Where(sq.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.CategoryID != "" {
		query = query.Where(sq.Expr("service_categories @> ?::jsonb", jsonArray(filter.CategoryID)))
	}

	pageSize := db.PageSize(filter.Size)
	query = query.Limit(pageSize).Offset(db.Offset(filter.Page, pageSize))

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*types.Supplier
	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return suppliers, nil
}

func (s *Storage) DeleteSupplier(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSupplier")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("suppliers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
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

// ListSuppliersByIDs fetches the given suppliers, skipping unknown IDs.
func (s *Storage) ListSuppliersByIDs(ctx context.Context, ids []string) ([]*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSuppliersByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(supplierColumns...).
		From("suppliers").
		Where(sq.Eq{"id": ids}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*types.Supplier
	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return suppliers, nil
}
