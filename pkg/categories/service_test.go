// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package categories

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package categories -destination ./mock_categories.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package categories -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package categories -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package categories -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package categories -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T, ttl time.Duration) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockTracingInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, ttl, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAuthz, mockTracer
}

func TestService_ListCategoriesCachesWithinTTL(t *testing.T) {
	s, mockStorage, _, mockTracer := newTestService(t, 5*time.Minute)

	categories := []*types.Category{{ID: "c-1", Name: "Catering"}}

	mockTracer.EXPECT().
		Start(gomock.Any(), "categories.Service.ListCategories").
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		Times(2)
	// Only the first call reaches storage.
	mockStorage.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)

	for i := 0; i < 2; i++ {
		got, err := s.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "c-1" {
			t.Fatalf("unexpected categories: %+v", got)
		}
	}
}

func TestService_ListCategoriesRefreshesAfterTTL(t *testing.T) {
	s, mockStorage, _, mockTracer := newTestService(t, time.Duration(0))

	mockTracer.EXPECT().
		Start(gomock.Any(), "categories.Service.ListCategories").
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		Times(2)
	mockStorage.EXPECT().
		ListCategories(gomock.Any()).
		Return([]*types.Category{{ID: "c-1"}}, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		if _, err := s.ListCategories(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestService_CreateCategoryInvalidatesCache(t *testing.T) {
	s, mockStorage, mockAuthz, mockTracer := newTestService(t, 5*time.Minute)

	ctx := authentication.WithUserID(context.Background(), "user-1")
	admin := &types.Profile{UserID: "user-1", Role: types.RoleAdmin}

	mockTracer.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).
		AnyTimes()

	// Warm the cache.
	mockStorage.EXPECT().ListCategories(gomock.Any()).Return([]*types.Category{{ID: "c-1"}}, nil)
	if _, err := s.ListCategories(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
	mockAuthz.EXPECT().
		CanAccess(gomock.Any(), admin, authorization.ResourceCategory, authorization.ActionCreate, "").
		Return(true)
	mockStorage.EXPECT().CreateCategory(gomock.Any(), "Venues").Return(&types.Category{ID: "c-2", Name: "Venues"}, nil)
	if _, err := s.CreateCategory(ctx, "Venues"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The next list must hit storage again.
	mockStorage.EXPECT().ListCategories(gomock.Any()).Return([]*types.Category{{ID: "c-1"}, {ID: "c-2"}}, nil)
	got, err := s.ListCategories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected refreshed list of 2 categories, got %d", len(got))
	}
}

func TestService_CreateCategory(t *testing.T) {
	admin := &types.Profile{UserID: "user-1", Role: types.RoleAdmin}
	member := &types.Profile{UserID: "user-2", Role: types.RoleAgencyMember}

	testCases := []struct {
		name         string
		userID       string
		setupMocks   func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name:   "success",
			userID: "user-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), admin, authorization.ResourceCategory, authorization.ActionCreate, "").
					Return(true)
				mockStorage.EXPECT().
					CreateCategory(gomock.Any(), "Catering").
					Return(&types.Category{ID: "c-1", Name: "Catering"}, nil)
			},
		},
		{
			name:   "non-admin denied",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-2").Return(member, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), member, authorization.ResourceCategory, authorization.ActionCreate, "").
					Return(false)
			},
			expectErr:    true,
			expectedKind: types.KindPermissionDenied,
		},
		{
			name:         "unauthenticated",
			expectErr:    true,
			expectedKind: types.KindPermissionDenied,
		},
		{
			name:   "duplicate name",
			userID: "user-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), admin, authorization.ResourceCategory, authorization.ActionCreate, "").
					Return(true)
				mockStorage.EXPECT().
					CreateCategory(gomock.Any(), "Catering").
					Return(nil, storage.ErrDuplicateKey)
			},
			expectErr:    true,
			expectedKind: types.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockTracer := newTestService(t, 5*time.Minute)

			mockTracer.EXPECT().
				Start(gomock.Any(), "categories.Service.CreateCategory").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.setupMocks != nil {
				tc.setupMocks(mockStorage, mockAuthz)
			}

			ctx := context.Background()
			if tc.userID != "" {
				ctx = authentication.WithUserID(ctx, tc.userID)
			}

			category, err := s.CreateCategory(ctx, "Catering")

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tc.expectedKind {
					t.Errorf("expected error kind %q, got %q", tc.expectedKind, kind)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if category.ID == "" {
				t.Error("expected created category to carry an ID")
			}
		})
	}
}

func TestService_DeleteCategory(t *testing.T) {
	admin := &types.Profile{UserID: "user-1", Role: types.RoleAdmin}

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), admin, authorization.ResourceCategory, authorization.ActionDelete, "").
					Return(true)
				mockStorage.EXPECT().DeleteCategory(gomock.Any(), "c-1").Return(nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), admin, authorization.ResourceCategory, authorization.ActionDelete, "").
					Return(true)
				mockStorage.EXPECT().DeleteCategory(gomock.Any(), "c-1").Return(storage.ErrNotFound)
			},
			expectErr:    true,
			expectedKind: types.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockTracer := newTestService(t, 5*time.Minute)

			mockTracer.EXPECT().
				Start(gomock.Any(), "categories.Service.DeleteCategory").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz)

			ctx := authentication.WithUserID(context.Background(), "user-1")
			err := s.DeleteCategory(ctx, "c-1")

			if tc.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tc.expectedKind {
					t.Errorf("expected error kind %q, got %q", tc.expectedKind, kind)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
