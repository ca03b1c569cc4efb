// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"testing"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_profiles.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	kratos  *MockKratosInterface
	tracer  *MockTracingInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T, selfPromotion bool) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		kratos:  NewMockKratosInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.storage, m.kratos, selfPromotion, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func TestService_GetMe(t *testing.T) {
	agencyID := "agency-1"
	supplierID := "supplier-1"

	testCases := []struct {
		name           string
		userID         string
		setupMocks     func(*serviceMocks)
		expectAgency   bool
		expectSupplier bool
		expectedKind   types.ErrorKind
		expectErr      bool
	}{
		{
			name:   "profile without organization",
			userID: "user-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1"}, nil)
			},
		},
		{
			name:   "profile with agency",
			userID: "user-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1", AgencyID: &agencyID}, nil)
				m.storage.EXPECT().
					GetAgencyByID(gomock.Any(), agencyID).
					Return(&types.Agency{ID: agencyID, Name: "Acme Events"}, nil)
			},
			expectAgency: true,
		},
		{
			name:   "profile with supplier",
			userID: "user-1",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1", SupplierID: &supplierID}, nil)
				m.storage.EXPECT().
					GetSupplierByID(gomock.Any(), supplierID).
					Return(&types.Supplier{ID: supplierID, Name: "Best Catering"}, nil)
			},
			expectSupplier: true,
		},
		{
			name:   "first request creates profile from identity",
			userID: "user-new",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-new").
					Return(nil, storage.ErrNotFound)
				m.kratos.EXPECT().
					GetIdentity(gomock.Any(), "user-new").
					Return(&ory.Identity{
						Id: "user-new",
						Traits: map[string]interface{}{
							"email": "new@example.com",
							"name":  map[string]interface{}{"first": "New", "last": "User"},
						},
					}, nil)
				m.storage.EXPECT().
					CreateProfile(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.Email != "new@example.com" || p.FirstName != "New" || p.LastName != "User" {
							t.Errorf("traits not carried into profile: %+v", p)
						}
						return p, nil
					})
			},
		},
		{
			name:   "identity provider unavailable",
			userID: "user-new",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-new").
					Return(nil, storage.ErrNotFound)
				m.kratos.EXPECT().
					GetIdentity(gomock.Any(), "user-new").
					Return(nil, context.DeadlineExceeded)
			},
			expectErr:    true,
			expectedKind: types.KindUpstream,
		},
		{
			name:         "unauthenticated",
			expectErr:    true,
			expectedKind: types.KindPermissionDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t, false)

			m.tracer.EXPECT().
				Start(gomock.Any(), "profiles.Service.GetMe").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.setupMocks != nil {
				tc.setupMocks(m)
			}

			ctx := context.Background()
			if tc.userID != "" {
				ctx = authentication.WithUserID(ctx, tc.userID)
			}

			me, err := s.GetMe(ctx)

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
			if me.Profile == nil {
				t.Fatal("expected profile in response")
			}
			if tc.expectAgency && me.Agency == nil {
				t.Error("expected agency to be resolved")
			}
			if tc.expectSupplier && me.Supplier == nil {
				t.Error("expected supplier to be resolved")
			}
		})
	}
}

func TestService_UpdateMe(t *testing.T) {
	first := "Jane"

	s, m := newTestService(t, false)

	m.tracer.EXPECT().
		Start(gomock.Any(), "profiles.Service.UpdateMe").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(&types.Profile{UserID: "user-1", FirstName: "Janet"}, nil)
	m.storage.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any(), []string{"first_name"}).
		Return(nil)

	ctx := authentication.WithUserID(context.Background(), "user-1")
	profile, err := s.UpdateMe(ctx, &first, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.FirstName != "Jane" {
		t.Errorf("expected first name to be updated, got %q", profile.FirstName)
	}
}

func TestService_UpdateMeNoChanges(t *testing.T) {
	s, m := newTestService(t, false)

	m.tracer.EXPECT().
		Start(gomock.Any(), "profiles.Service.UpdateMe").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(&types.Profile{UserID: "user-1"}, nil)

	// No fields set, storage update must not be called.
	ctx := authentication.WithUserID(context.Background(), "user-1")
	if _, err := s.UpdateMe(ctx, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_PromoteAdmin(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		s, m := newTestService(t, false)

		m.tracer.EXPECT().
			Start(gomock.Any(), "profiles.Service.PromoteAdmin").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		ctx := authentication.WithUserID(context.Background(), "user-1")
		_, err := s.PromoteAdmin(ctx)
		if types.KindOf(err) != types.KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v", err)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		s, m := newTestService(t, true)

		m.tracer.EXPECT().
			Start(gomock.Any(), "profiles.Service.PromoteAdmin").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "user-1").
			Return(&types.Profile{UserID: "user-1", Role: types.RoleAgencyMember}, nil)
		m.storage.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any(), []string{"role"}).
			Return(nil)
		m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())

		ctx := authentication.WithUserID(context.Background(), "user-1")
		profile, err := s.PromoteAdmin(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.Role != types.RoleAdmin {
			t.Errorf("expected admin role, got %q", profile.Role)
		}
	})
}
