// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"errors"
	"io"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/internal/upload"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	db      db.DBClientInterface
	objects ObjectStoreInterface
	authz   authorization.AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	dbClient db.DBClientInterface,
	objects ObjectStoreInterface,
	authz authorization.AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		db:      dbClient,
		objects: objects,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CreateImage(ctx context.Context, input *CreateImageInput) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.CreateImage")
	defer span.End()

	if err := s.authorize(ctx, authorization.ActionCreate, input.OrgID); err != nil {
		return nil, err
	}

	img := &types.Image{
		OrganizationID:   input.OrgID,
		OrganizationType: input.OrgType,
		FileName:         input.FileName,
		FilePath:         input.FilePath,
		FileURL:          input.FileURL,
		FileSize:         input.FileSize,
		MimeType:         input.MimeType,
		AltText:          input.AltText,
		Caption:          input.Caption,
		IsFeatured:       input.IsFeatured,
		SortOrder:        input.SortOrder,
	}

	// The first image of an organization is always its featured one. The
	// count, any sibling unfeaturing and the insert share one transaction so
	// concurrent creates cannot leave the gallery with two featured rows.
	var created *types.Image
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		count, err := s.storage.CountImagesByOrg(ctx, input.OrgType, input.OrgID)
		if err != nil {
			return err
		}

		if count == 0 {
			img.IsFeatured = true
		} else if img.IsFeatured {
			if err := s.storage.UnfeatureImagesByOrg(ctx, input.OrgType, input.OrgID); err != nil {
				return err
			}
		}

		created, err = s.storage.CreateImage(ctx, img)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) ListImages(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.ListImages")
	defer span.End()

	return s.storage.ListImagesByOrg(ctx, orgType, orgID)
}

func (s *Service) GetFeaturedImage(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.GetFeaturedImage")
	defer span.End()

	img, err := s.storage.GetFeaturedImageByOrg(ctx, orgType, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("organization has no featured image")
		}
		return nil, err
	}

	return img, nil
}

func (s *Service) UpdateImage(ctx context.Context, id string, input *UpdateImageInput) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.UpdateImage")
	defer span.End()

	img, err := s.getImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, authorization.ActionEdit, img.OrganizationID); err != nil {
		return nil, err
	}

	var paths []string
	if input.AltText != nil {
		img.AltText = *input.AltText
		paths = append(paths, "alt_text")
	}
	if input.Caption != nil {
		img.Caption = *input.Caption
		paths = append(paths, "caption")
	}
	if input.SortOrder != nil {
		img.SortOrder = *input.SortOrder
		paths = append(paths, "sort_order")
	}
	if len(paths) == 0 {
		return img, nil
	}

	if err := s.storage.UpdateImage(ctx, img, paths); err != nil {
		return nil, err
	}

	return img, nil
}

func (s *Service) DeleteImage(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.DeleteImage")
	defer span.End()

	img, err := s.getImage(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, authorization.ActionDelete, img.OrganizationID); err != nil {
		return err
	}

	// Deleting the featured image promotes the oldest remaining one, inside
	// the same transaction as the delete.
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteImage(ctx, id); err != nil {
			return err
		}

		if !img.IsFeatured {
			return nil
		}

		oldest, err := s.storage.GetOldestImageByOrg(ctx, img.OrganizationType, img.OrganizationID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}

		return s.storage.SetImageFeatured(ctx, oldest.ID, true)
	})
	if err != nil {
		return err
	}

	// The DB row is gone; a stale blob is recoverable by a cleanup job, so a
	// failed object delete only logs.
	if err := s.objects.Delete(ctx, img.FilePath); err != nil {
		s.logger.Warnf("failed to delete image object %s: %v", img.FilePath, err)
	}

	return nil
}

func (s *Service) SetFeaturedImage(ctx context.Context, id string) (*types.Image, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.SetFeaturedImage")
	defer span.End()

	img, err := s.getImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, authorization.ActionEdit, img.OrganizationID); err != nil {
		return nil, err
	}

	// Unfeature-then-feature runs in one transaction so the gallery never
	// settles with zero or two featured images.
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.UnfeatureImagesByOrg(ctx, img.OrganizationType, img.OrganizationID); err != nil {
			return err
		}
		return s.storage.SetImageFeatured(ctx, id, true)
	})
	if err != nil {
		return nil, err
	}

	img.IsFeatured = true
	return img, nil
}

func (s *Service) UploadFile(ctx context.Context, kind upload.Kind, filename, mimeType string, size int64, body io.Reader) (*UploadResult, error) {
	ctx, span := s.tracer.Start(ctx, "gallery.Service.UploadFile")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return nil, types.NewPermissionDeniedError("authentication required")
	}

	if err := upload.Validate(kind, mimeType, size); err != nil {
		return nil, err
	}

	// Objects are keyed under the caller's organization when they have one,
	// otherwise under their user ID.
	scope := userID
	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		switch {
		case profile.AgencyID != nil:
			scope = *profile.AgencyID
		case profile.SupplierID != nil:
			scope = *profile.SupplierID
		}
	}

	key := upload.Key(kind, scope, filename)
	url, err := s.objects.Upload(ctx, key, mimeType, body, size)
	if err != nil {
		return nil, types.NewUpstreamError("failed to store uploaded file", err)
	}

	return &UploadResult{Key: key, URL: url}, nil
}

func (s *Service) getImage(ctx context.Context, id string) (*types.Image, error) {
	img, err := s.storage.GetImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.NewNotFoundError("image not found")
		}
		return nil, err
	}
	return img, nil
}

func (s *Service) authorize(ctx context.Context, action authorization.Action, orgID string) error {
	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		return types.NewPermissionDeniedError("authentication required")
	}

	profile, err := s.storage.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if !s.authz.CanAccess(ctx, profile, authorization.ResourceGallery, action, orgID) {
		return types.NewPermissionDeniedError("not allowed to manage this gallery")
	}

	return nil
}
