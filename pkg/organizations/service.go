// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) OnboardAgency(ctx context.Context, input *OrgInput) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.OnboardAgency")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.InOrganization() {
		return nil, types.NewConflictError("User already belongs to an organization")
	}

	agency := &types.Agency{
		Name:               input.Name,
		ContactName:        input.ContactName,
		Email:              input.Email,
		Phone:              input.Phone,
		LogoURL:            input.LogoURL,
		Website:            input.Website,
		Location:           input.Location,
		InterestCategories: input.Categories,
		About:              input.About,
		Status:             types.OrgStatusActive,
	}

	// The org row and the creator's membership land together or not at all.
	var created *types.Agency
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateAgency(ctx, agency)
		if err != nil {
			return err
		}

		profile.AgencyID = &created.ID
		profile.Role = types.RoleAgencyAdmin
		return s.storage.UpdateProfile(ctx, profile, []string{"agency_id", "role"})
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewConflictError("an organization with this name already exists")
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) OnboardSupplier(ctx context.Context, input *OrgInput) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.OnboardSupplier")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.InOrganization() {
		return nil, types.NewConflictError("User already belongs to an organization")
	}

	supplier := &types.Supplier{
		Name:              input.Name,
		ContactName:       input.ContactName,
		Email:             input.Email,
		Phone:             input.Phone,
		LogoURL:           input.LogoURL,
		BrochureURL:       input.BrochureURL,
		Location:          input.Location,
		ServiceCategories: input.Categories,
		ServicesText:      input.ServicesText,
		Status:            types.OrgStatusActive,
	}

	var created *types.Supplier
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateSupplier(ctx, supplier)
		if err != nil {
			return err
		}

		profile.SupplierID = &created.ID
		profile.Role = types.RoleSupplierAdmin
		return s.storage.UpdateProfile(ctx, profile, []string{"supplier_id", "role"})
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, types.NewConflictError("an organization with this name already exists")
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) GetOrganization(ctx context.Context) (*Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetOrganization")
	defer span.End()

	profile, err := s.callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case profile.AgencyID != nil:
		agency, err := s.storage.GetAgencyByID(ctx, *profile.AgencyID)
		if err != nil {
			return nil, err
		}
		return &Organization{OrgType: types.OrgTypeAgency, Role: profile.Role, Agency: agency}, nil

	case profile.SupplierID != nil:
		supplier, err := s.storage.GetSupplierByID(ctx, *profile.SupplierID)
		if err != nil {
			return nil, err
		}
		return &Organization{OrgType: types.OrgTypeSupplier, Role: profile.Role, Supplier: supplier}, nil
	}

	return nil, types.NewNotFoundError("user is not part of an organization")
}

func (s *Service) ListAgencies(ctx context.Context, filter storage.OrgFilter) ([]*AgencyListing, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListAgencies")
	defer span.End()

	filter.PublishedOnly = true
	agencies, err := s.storage.ListAgencies(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(agencies))
	for _, a := range agencies {
		ids = append(ids, a.ID)
	}

	featured, err := s.featuredByOrg(ctx, types.OrgTypeAgency, ids)
	if err != nil {
		return nil, err
	}

	listings := make([]*AgencyListing, 0, len(agencies))
	for _, a := range agencies {
		listings = append(listings, &AgencyListing{Agency: a, FeaturedImage: featured[a.ID]})
	}

	return listings, nil
}

func (s *Service) GetAgency(ctx context.Context, id string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetAgency")
	defer span.End()

	agency, err := s.storage.GetAgencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("agency not found")
		}
		return nil, err
	}

	return agency, nil
}

func (s *Service) UpdateAgency(ctx context.Context, id string, input *OrgInput, paths []string) (*types.Agency, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.UpdateAgency")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceAgency, authorization.ActionEdit, id); err != nil {
		return nil, err
	}

	agency := &types.Agency{
		ID:                 id,
		Name:               input.Name,
		ContactName:        input.ContactName,
		Phone:              input.Phone,
		LogoURL:            input.LogoURL,
		Website:            input.Website,
		Location:           input.Location,
		InterestCategories: input.Categories,
		About:              input.About,
	}

	if err := s.storage.UpdateAgency(ctx, agency, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("agency not found")
		}
		return nil, err
	}

	return s.storage.GetAgencyByID(ctx, id)
}

func (s *Service) SetAgencyPublished(ctx context.Context, id string, published bool) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.SetAgencyPublished")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceAgency, authorization.ActionEdit, id); err != nil {
		return err
	}

	agency := &types.Agency{ID: id, IsPublished: published}
	if err := s.storage.UpdateAgency(ctx, agency, []string{"is_published"}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("agency not found")
		}
		return err
	}

	return nil
}

func (s *Service) DeleteAgency(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DeleteAgency")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceAgency, authorization.ActionDelete, ""); err != nil {
		return err
	}

	if err := s.storage.DeleteAgency(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("agency not found")
		}
		return err
	}

	return nil
}

func (s *Service) ListSuppliers(ctx context.Context, filter storage.OrgFilter) ([]*SupplierListing, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListSuppliers")
	defer span.End()

	filter.PublishedOnly = true
	suppliers, err := s.storage.ListSuppliers(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(suppliers))
	for _, sup := range suppliers {
		ids = append(ids, sup.ID)
	}

	featured, err := s.featuredByOrg(ctx, types.OrgTypeSupplier, ids)
	if err != nil {
		return nil, err
	}

	listings := make([]*SupplierListing, 0, len(suppliers))
	for _, sup := range suppliers {
		listings = append(listings, &SupplierListing{Supplier: sup, FeaturedImage: featured[sup.ID]})
	}

	return listings, nil
}

func (s *Service) GetSupplier(ctx context.Context, id string) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetSupplier")
	defer span.End()

	supplier, err := s.storage.GetSupplierByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("supplier not found")
		}
		return nil, err
	}

	return supplier, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, id string, input *OrgInput, paths []string) (*types.Supplier, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.UpdateSupplier")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceSupplier, authorization.ActionEdit, id); err != nil {
		return nil, err
	}

	supplier := &types.Supplier{
		ID:                id,
		Name:              input.Name,
		ContactName:       input.ContactName,
		Phone:             input.Phone,
		LogoURL:           input.LogoURL,
		BrochureURL:       input.BrochureURL,
		Location:          input.Location,
		ServiceCategories: input.Categories,
		ServicesText:      input.ServicesText,
	}

	if err := s.storage.UpdateSupplier(ctx, supplier, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("supplier not found")
		}
		return nil, err
	}

	return s.storage.GetSupplierByID(ctx, id)
}

func (s *Service) SetSupplierPublished(ctx context.Context, id string, published bool) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.SetSupplierPublished")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceSupplier, authorization.ActionEdit, id); err != nil {
		return err
	}

	supplier := &types.Supplier{ID: id, IsPublished: published}
	if err := s.storage.UpdateSupplier(ctx, supplier, []string{"is_published"}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("supplier not found")
		}
		return err
	}

	return nil
}

func (s *Service) DeleteSupplier(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DeleteSupplier")
	defer span.End()

	if err := s.authorizeOrg(ctx, authorization.ResourceSupplier, authorization.ActionDelete, ""); err != nil {
		return err
	}

	if err := s.storage.DeleteSupplier(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.NewNotFoundError("supplier not found")
		}
		return err
	}

	return nil
}

func (s *Service) callerProfile(ctx context.Context) (*types.Profile, error) {
	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("profile not found")
		}
		return nil, err
	}

	return profile, nil
}

func (s *Service) authorizeOrg(ctx context.Context, resource authorization.Resource, action authorization.Action, orgID string) error {
	profile, err := s.callerProfile(ctx)
	if err != nil {
		return err
	}

	if !s.authz.CanAccess(ctx, profile, resource, action, orgID) {
		return types.NewPermissionDeniedError("not allowed to manage this organization")
	}

	return nil
}

func (s *Service) featuredByOrg(ctx context.Context, orgType types.OrgType, ids []string) (map[string]*types.Image, error) {
	images, err := s.storage.ListFeaturedImages(ctx, orgType, ids)
	if err != nil {
		return nil, err
	}

	featured := make(map[string]*types.Image, len(images))
	for _, img := range images {
		featured[img.OrganizationID] = img
	}

	return featured, nil
}
