// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"io"

	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/internal/upload"
)

// CreateImageInput carries the metadata of an already-uploaded image file.
type CreateImageInput struct {
	OrgType    types.OrgType
	OrgID      string
	FileName   string
	FilePath   string
	FileURL    string
	FileSize   int64
	MimeType   string
	AltText    string
	Caption    string
	IsFeatured bool
	SortOrder  int
}

// UpdateImageInput carries the editable image fields; nil means unchanged.
type UpdateImageInput struct {
	AltText   *string
	Caption   *string
	SortOrder *int
}

// UploadResult points at the stored object.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ServiceInterface interface {
	CreateImage(ctx context.Context, input *CreateImageInput) (*types.Image, error)
	ListImages(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Image, error)
	GetFeaturedImage(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error)
	UpdateImage(ctx context.Context, id string, input *UpdateImageInput) (*types.Image, error)
	DeleteImage(ctx context.Context, id string) error
	SetFeaturedImage(ctx context.Context, id string) (*types.Image, error)
	UploadFile(ctx context.Context, kind upload.Kind, filename, mimeType string, size int64, body io.Reader) (*UploadResult, error)
}

type StorageInterface interface {
	CreateImage(ctx context.Context, img *types.Image) (*types.Image, error)
	GetImageByID(ctx context.Context, id string) (*types.Image, error)
	ListImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) ([]*types.Image, error)
	CountImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) (int64, error)
	UpdateImage(ctx context.Context, img *types.Image, paths []string) error
	UnfeatureImagesByOrg(ctx context.Context, orgType types.OrgType, orgID string) error
	SetImageFeatured(ctx context.Context, id string, featured bool) error
	DeleteImage(ctx context.Context, id string) error
	GetFeaturedImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error)
	GetOldestImageByOrg(ctx context.Context, orgType types.OrgType, orgID string) (*types.Image, error)

	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
}

type ObjectStoreInterface interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
