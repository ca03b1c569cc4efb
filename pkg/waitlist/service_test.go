// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package waitlist

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package waitlist -destination ./mock_waitlist.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package waitlist -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package waitlist -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package waitlist -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package waitlist -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Join(t *testing.T) {
	entry := &types.WaitlistEntry{
		FullName: "Jane Doe",
		Email:    "Jane@Example.com",
		Role:     "agency",
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockEmailInterface)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockMailer *MockEmailInterface) {
				created := &types.WaitlistEntry{ID: "wl-1", FullName: "Jane Doe", Email: "jane@example.com"}
				mockStorage.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(created, nil)
				mockMailer.EXPECT().
					SendWaitlistWelcomeEmail(gomock.Any(), "jane@example.com", "Jane Doe").
					Return(nil)
			},
		},
		{
			name: "duplicate email",
			setupMocks: func(mockStorage *MockStorageInterface, mockMailer *MockEmailInterface) {
				mockStorage.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrDuplicateKey)
			},
			expectErr:    true,
			expectedKind: types.KindConflict,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockMailer *MockEmailInterface) {
				mockStorage.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(nil, dbErr)
			},
			expectErr:    true,
			expectedKind: types.KindInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockMailer := NewMockEmailInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "waitlist.Service.Join").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockMailer)

			s := NewService(mockStorage, mockMailer, NewMockAuthorizerInterface(ctrl), mockTracer, mockMonitor, mockLogger)

			created, err := s.Join(context.Background(), &types.WaitlistEntry{
				FullName: entry.FullName,
				Email:    entry.Email,
				Role:     entry.Role,
			})

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
			if created.ID == "" {
				t.Error("expected created entry to carry an ID")
			}
		})
	}
}

func TestService_JoinNormalizesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockMailer := NewMockEmailInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), "waitlist.Service.Join").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mockStorage.EXPECT().
		CreateWaitlistEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *types.WaitlistEntry) (*types.WaitlistEntry, error) {
			if e.Email != "jane@example.com" {
				t.Errorf("expected normalized email, got %q", e.Email)
			}
			return e, nil
		})
	mockMailer.EXPECT().
		SendWaitlistWelcomeEmail(gomock.Any(), "jane@example.com", gomock.Any()).
		Return(errors.New("ses down"))
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	s := NewService(mockStorage, mockMailer, NewMockAuthorizerInterface(ctrl), mockTracer, mockMonitor, mockLogger)

	// A mail failure must not fail the signup.
	if _, err := s.Join(context.Background(), &types.WaitlistEntry{Email: "  Jane@Example.com "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_CheckEmail(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name: "known email",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					GetWaitlistEntryByEmail(gomock.Any(), "jane@example.com").
					Return(&types.WaitlistEntry{ID: "wl-1", Email: "jane@example.com"}, nil)
			},
			expected: true,
		},
		{
			name: "unknown email",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().
					GetWaitlistEntryByEmail(gomock.Any(), "jane@example.com").
					Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "waitlist.Service.CheckEmail").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(
				mockStorage,
				NewMockEmailInterface(ctrl),
				NewMockAuthorizerInterface(ctrl),
				mockTracer,
				NewMockMonitorInterface(ctrl),
				NewMockLoggerInterface(ctrl),
			)

			exists, err := s.CheckEmail(context.Background(), " Jane@Example.com ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tc.expected {
				t.Errorf("expected exists=%v, got %v", tc.expected, exists)
			}
		})
	}
}

func TestService_ListEntries(t *testing.T) {
	admin := &types.Profile{UserID: "user-1", Role: types.RoleAdmin}
	member := &types.Profile{UserID: "user-2", Role: types.RoleAgencyMember}

	testCases := []struct {
		name       string
		userID     string
		setupMocks func(*MockStorageInterface, *MockAuthorizerInterface)
		expectErr  bool
	}{
		{
			name:   "admin lists entries",
			userID: "user-1",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(admin, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), admin, authorization.ResourceWaitlist, authorization.ActionView, "").
					Return(true)
				mockStorage.EXPECT().
					ListWaitlistEntries(gomock.Any(), storage.Pagination{Page: 2, Size: 50}).
					Return([]*types.WaitlistEntry{{ID: "wl-1"}}, nil)
			},
		},
		{
			name:   "non-admin denied",
			userID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockStorage.EXPECT().GetProfileByUserID(gomock.Any(), "user-2").Return(member, nil)
				mockAuthz.EXPECT().
					CanAccess(gomock.Any(), member, authorization.ResourceWaitlist, authorization.ActionView, "").
					Return(false)
			},
			expectErr: true,
		},
		{
			name:      "unauthenticated",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "waitlist.Service.ListEntries").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.setupMocks != nil {
				tc.setupMocks(mockStorage, mockAuthz)
			}

			s := NewService(
				mockStorage,
				NewMockEmailInterface(ctrl),
				mockAuthz,
				mockTracer,
				NewMockMonitorInterface(ctrl),
				NewMockLoggerInterface(ctrl),
			)

			ctx := context.Background()
			if tc.userID != "" {
				ctx = authentication.WithUserID(ctx, tc.userID)
			}

			entries, err := s.ListEntries(ctx, storage.Pagination{Page: 2, Size: 50})

			if tc.expectErr {
				if types.KindOf(err) != types.KindPermissionDenied {
					t.Fatalf("expected permission denied, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("expected 1 entry, got %d", len(entries))
			}
		})
	}
}
