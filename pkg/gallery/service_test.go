// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/internal/upload"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_gallery.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gallery -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	objects *MockObjectStoreInterface
	authz   *MockAuthorizerInterface
	tracer  *MockTracingInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		db:      NewMockDBClientInterface(ctrl),
		objects: NewMockObjectStoreInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.storage, m.db, m.objects, m.authz, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func expectSpan(m serviceMocks, name string) {
	m.tracer.EXPECT().
		Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()
}

func passthroughTx(m serviceMocks) {
	m.db.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func authedCtx(userID string) context.Context {
	return authentication.WithUserID(context.Background(), userID)
}

func expectOwner(m serviceMocks, userID, agencyID string, action authorization.Action) *types.Profile {
	profile := &types.Profile{UserID: userID, Role: types.RoleAgencyAdmin, AgencyID: &agencyID}
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), userID).
		Return(profile, nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), profile, authorization.ResourceGallery, action, agencyID).
		Return(true)
	return profile
}

func TestService_CreateImage(t *testing.T) {
	agencyID := "agency-1"
	input := &CreateImageInput{
		OrgType:  types.OrgTypeAgency,
		OrgID:    agencyID,
		FileName: "venue.jpg",
		FilePath: "gallery/agency-1/1_venue.jpg",
		FileURL:  "https://cdn.test/gallery/agency-1/1_venue.jpg",
		FileSize: 1024,
		MimeType: "image/jpeg",
	}

	tests := []struct {
		name           string
		input          *CreateImageInput
		setupMocks     func(m serviceMocks)
		expectFeatured bool
		expectErr      bool
	}{
		{
			name:  "first image is force-featured",
			input: input,
			setupMocks: func(m serviceMocks) {
				expectOwner(m, "user-1", agencyID, authorization.ActionCreate)
				passthroughTx(m)
				m.storage.EXPECT().
					CountImagesByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(int64(0), nil)
				m.storage.EXPECT().
					CreateImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, img *types.Image) (*types.Image, error) {
						img.ID = "img-1"
						return img, nil
					})
			},
			expectFeatured: true,
		},
		{
			name:  "later image defaults unfeatured",
			input: input,
			setupMocks: func(m serviceMocks) {
				expectOwner(m, "user-1", agencyID, authorization.ActionCreate)
				passthroughTx(m)
				m.storage.EXPECT().
					CountImagesByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(int64(3), nil)
				m.storage.EXPECT().
					CreateImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, img *types.Image) (*types.Image, error) {
						img.ID = "img-4"
						return img, nil
					})
			},
			expectFeatured: false,
		},
		{
			name: "explicit feature request unfeatures siblings",
			input: &CreateImageInput{
				OrgType:    types.OrgTypeAgency,
				OrgID:      agencyID,
				FileName:   "venue.jpg",
				FilePath:   "gallery/agency-1/2_venue.jpg",
				FileURL:    "https://cdn.test/gallery/agency-1/2_venue.jpg",
				FileSize:   2048,
				MimeType:   "image/png",
				IsFeatured: true,
			},
			setupMocks: func(m serviceMocks) {
				expectOwner(m, "user-1", agencyID, authorization.ActionCreate)
				passthroughTx(m)
				m.storage.EXPECT().
					CountImagesByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(int64(2), nil)
				m.storage.EXPECT().
					UnfeatureImagesByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(nil)
				m.storage.EXPECT().
					CreateImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, img *types.Image) (*types.Image, error) {
						img.ID = "img-5"
						return img, nil
					})
			},
			expectFeatured: true,
		},
		{
			name:  "caller outside the organization is denied",
			input: input,
			setupMocks: func(m serviceMocks) {
				profile := &types.Profile{UserID: "user-1", Role: types.RoleSupplierAdmin}
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceGallery, authorization.ActionCreate, agencyID).
					Return(false)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "gallery.Service.CreateImage")
			tt.setupMocks(m)

			img, err := s.CreateImage(authedCtx("user-1"), tt.input)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if types.KindOf(err) != types.KindPermissionDenied {
					t.Errorf("expected permission denied, got %v", types.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if img.IsFeatured != tt.expectFeatured {
				t.Errorf("expected is_featured=%v, got %v", tt.expectFeatured, img.IsFeatured)
			}
		})
	}
}

func TestService_SetFeaturedImage(t *testing.T) {
	agencyID := "agency-1"

	s, m := newTestService(t)
	expectSpan(m, "gallery.Service.SetFeaturedImage")

	m.storage.EXPECT().
		GetImageByID(gomock.Any(), "img-2").
		Return(&types.Image{
			ID:               "img-2",
			OrganizationID:   agencyID,
			OrganizationType: types.OrgTypeAgency,
		}, nil)
	expectOwner(m, "user-1", agencyID, authorization.ActionEdit)
	passthroughTx(m)
	gomock.InOrder(
		m.storage.EXPECT().
			UnfeatureImagesByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
			Return(nil),
		m.storage.EXPECT().
			SetImageFeatured(gomock.Any(), "img-2", true).
			Return(nil),
	)

	img, err := s.SetFeaturedImage(authedCtx("user-1"), "img-2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !img.IsFeatured {
		t.Error("expected returned image to be featured")
	}
}

func TestService_SetFeaturedImageRollsBack(t *testing.T) {
	agencyID := "agency-1"

	s, m := newTestService(t)
	expectSpan(m, "gallery.Service.SetFeaturedImage")

	m.storage.EXPECT().
		GetImageByID(gomock.Any(), "img-2").
		Return(&types.Image{
			ID:               "img-2",
			OrganizationID:   agencyID,
			OrganizationType: types.OrgTypeAgency,
		}, nil)
	expectOwner(m, "user-1", agencyID, authorization.ActionEdit)
	m.db.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		Return(errors.New("tx aborted"))

	if _, err := s.SetFeaturedImage(authedCtx("user-1"), "img-2"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestService_DeleteImage(t *testing.T) {
	agencyID := "agency-1"

	tests := []struct {
		name       string
		setupMocks func(m serviceMocks)
	}{
		{
			name: "deleting the featured image promotes the oldest sibling",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetImageByID(gomock.Any(), "img-1").
					Return(&types.Image{
						ID:               "img-1",
						OrganizationID:   agencyID,
						OrganizationType: types.OrgTypeAgency,
						FilePath:         "gallery/agency-1/1_venue.jpg",
						IsFeatured:       true,
					}, nil)
				expectOwner(m, "user-1", agencyID, authorization.ActionDelete)
				passthroughTx(m)
				m.storage.EXPECT().
					DeleteImage(gomock.Any(), "img-1").
					Return(nil)
				m.storage.EXPECT().
					GetOldestImageByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(&types.Image{ID: "img-2"}, nil)
				m.storage.EXPECT().
					SetImageFeatured(gomock.Any(), "img-2", true).
					Return(nil)
				m.objects.EXPECT().
					Delete(gomock.Any(), "gallery/agency-1/1_venue.jpg").
					Return(nil)
			},
		},
		{
			name: "deleting the last image leaves nothing to promote",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetImageByID(gomock.Any(), "img-1").
					Return(&types.Image{
						ID:               "img-1",
						OrganizationID:   agencyID,
						OrganizationType: types.OrgTypeAgency,
						FilePath:         "gallery/agency-1/1_venue.jpg",
						IsFeatured:       true,
					}, nil)
				expectOwner(m, "user-1", agencyID, authorization.ActionDelete)
				passthroughTx(m)
				m.storage.EXPECT().
					DeleteImage(gomock.Any(), "img-1").
					Return(nil)
				m.storage.EXPECT().
					GetOldestImageByOrg(gomock.Any(), types.OrgTypeAgency, agencyID).
					Return(nil, storage.ErrNotFound)
				m.objects.EXPECT().
					Delete(gomock.Any(), "gallery/agency-1/1_venue.jpg").
					Return(nil)
			},
		},
		{
			name: "blob delete failure does not fail the request",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetImageByID(gomock.Any(), "img-1").
					Return(&types.Image{
						ID:               "img-1",
						OrganizationID:   agencyID,
						OrganizationType: types.OrgTypeAgency,
						FilePath:         "gallery/agency-1/1_venue.jpg",
					}, nil)
				expectOwner(m, "user-1", agencyID, authorization.ActionDelete)
				passthroughTx(m)
				m.storage.EXPECT().
					DeleteImage(gomock.Any(), "img-1").
					Return(nil)
				m.objects.EXPECT().
					Delete(gomock.Any(), "gallery/agency-1/1_venue.jpg").
					Return(errors.New("bucket unavailable"))
				m.logger.EXPECT().
					Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "gallery.Service.DeleteImage")
			tt.setupMocks(m)

			if err := s.DeleteImage(authedCtx("user-1"), "img-1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_UpdateImage(t *testing.T) {
	agencyID := "agency-1"
	altText := "Main hall"

	s, m := newTestService(t)
	expectSpan(m, "gallery.Service.UpdateImage")

	m.storage.EXPECT().
		GetImageByID(gomock.Any(), "img-1").
		Return(&types.Image{
			ID:               "img-1",
			OrganizationID:   agencyID,
			OrganizationType: types.OrgTypeAgency,
		}, nil)
	expectOwner(m, "user-1", agencyID, authorization.ActionEdit)
	m.storage.EXPECT().
		UpdateImage(gomock.Any(), gomock.Any(), []string{"alt_text"}).
		DoAndReturn(func(_ context.Context, img *types.Image, _ []string) error {
			if img.AltText != altText {
				t.Errorf("expected alt text %q, got %q", altText, img.AltText)
			}
			return nil
		})

	img, err := s.UpdateImage(authedCtx("user-1"), "img-1", &UpdateImageInput{AltText: &altText})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if img.AltText != altText {
		t.Errorf("expected alt text %q, got %q", altText, img.AltText)
	}
}

func TestService_GetFeaturedImageNotFound(t *testing.T) {
	s, m := newTestService(t)
	expectSpan(m, "gallery.Service.GetFeaturedImage")

	m.storage.EXPECT().
		GetFeaturedImageByOrg(gomock.Any(), types.OrgTypeSupplier, "supplier-1").
		Return(nil, storage.ErrNotFound)

	_, err := s.GetFeaturedImage(context.Background(), types.OrgTypeSupplier, "supplier-1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if types.KindOf(err) != types.KindNotFound {
		t.Errorf("expected not found, got %v", types.KindOf(err))
	}
}

func TestService_UploadFile(t *testing.T) {
	agencyID := "agency-1"

	tests := []struct {
		name         string
		kind         upload.Kind
		filename     string
		mimeType     string
		size         int64
		setupMocks   func(m serviceMocks)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name:     "image upload keyed under the caller's organization",
			kind:     upload.KindImage,
			filename: "venue photo.jpg",
			mimeType: "image/jpeg",
			size:     1024,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1", AgencyID: &agencyID}, nil)
				m.objects.EXPECT().
					Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any(), int64(1024)).
					DoAndReturn(func(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
						if !strings.HasPrefix(key, "gallery/agency-1/") {
							t.Errorf("expected key scoped to the agency, got %q", key)
						}
						if strings.Contains(key, " ") {
							t.Errorf("expected sanitized key, got %q", key)
						}
						return "https://cdn.test/" + key, nil
					})
			},
		},
		{
			name:         "disallowed mime type rejected before any write",
			kind:         upload.KindQuotation,
			filename:     "quote.exe",
			mimeType:     "application/octet-stream",
			size:         1024,
			setupMocks:   func(m serviceMocks) {},
			expectedKind: types.KindValidation,
			expectErr:    true,
		},
		{
			name:         "oversize file rejected",
			kind:         upload.KindImage,
			filename:     "huge.png",
			mimeType:     "image/png",
			size:         upload.MaxImageSize + 1,
			setupMocks:   func(m serviceMocks) {},
			expectedKind: types.KindValidation,
			expectErr:    true,
		},
		{
			name:     "object store failure surfaces as upstream error",
			kind:     upload.KindQuotation,
			filename: "quote.pdf",
			mimeType: "application/pdf",
			size:     2048,
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(nil, storage.ErrNotFound)
				m.objects.EXPECT().
					Upload(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any(), int64(2048)).
					Return("", errors.New("bucket unavailable"))
			},
			expectedKind: types.KindUpstream,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "gallery.Service.UploadFile")
			tt.setupMocks(m)

			result, err := s.UploadFile(authedCtx("user-1"), tt.kind, tt.filename, tt.mimeType, tt.size, strings.NewReader("data"))

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Errorf("expected error kind %v, got %v", tt.expectedKind, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.URL == "" || result.Key == "" {
				t.Error("expected populated upload result")
			}
		})
	}
}
