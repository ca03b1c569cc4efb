// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqinvites

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

//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_rfqinvites.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqinvites -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	mailer  *MockEmailInterface
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
		mailer:  NewMockEmailInterface(ctrl),
		objects: NewMockObjectStoreInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.storage, m.db, m.mailer, m.objects, m.authz, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
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

func supplierProfile(userID, supplierID string) *types.Profile {
	return &types.Profile{UserID: userID, Role: types.RoleSupplierAdmin, SupplierID: &supplierID}
}

func agencyProfile(userID, agencyID string) *types.Profile {
	return &types.Profile{UserID: userID, Role: types.RoleAgencyAdmin, AgencyID: &agencyID}
}

func testInvite(status types.InviteStatus) *types.RfqInvite {
	return &types.RfqInvite{
		ID:           "invite-1",
		RfqID:        "rfq-1",
		SupplierID:   "supplier-1",
		InviteStatus: status,
	}
}

func testRfq() *types.Rfq {
	return &types.Rfq{
		ID:       "rfq-1",
		AgencyID: "agency-1",
		Title:    "Spring gala production",
		Status:   types.RfqStatusSent,
	}
}

func TestService_ListMyInvites(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(m serviceMocks)
		expectedLen  int
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name: "returns the caller's supplier invites",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(supplierProfile("user-1", "supplier-1"), nil)
				m.storage.EXPECT().
					ListInvitesBySupplier(gomock.Any(), "supplier-1").
					Return([]*types.RfqInvite{testInvite(types.InviteStatusInvited), testInvite(types.InviteStatusOpened)}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "agency users have no invite inbox",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(agencyProfile("user-1", "agency-1"), nil)
			},
			expectedKind: types.KindPermissionDenied,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqinvites.Service.ListMyInvites")
			tt.setupMocks(m)

			invites, err := s.ListMyInvites(authedCtx("user-1"))

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Fatalf("expected kind %v, got %v", tt.expectedKind, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(invites) != tt.expectedLen {
				t.Fatalf("expected %d invites, got %d", tt.expectedLen, len(invites))
			}
		})
	}
}

func TestService_GetInvite(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		setupMocks     func(m serviceMocks)
		expectedStatus types.InviteStatus
		expectedKind   types.ErrorKind
		expectErr      bool
	}{
		{
			name:   "supplier viewing a fresh invite marks it opened",
			userID: "supplier-user",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "supplier-user").
					Return(supplierProfile("supplier-user", "supplier-1"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(testInvite(types.InviteStatusInvited), nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(testRfq(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "supplier-1").
					Return(true)
				m.storage.EXPECT().
					UpdateInviteStatus(gomock.Any(), "invite-1", types.InviteStatusOpened).
					Return(nil)
			},
			expectedStatus: types.InviteStatusOpened,
		},
		{
			name:   "supplier re-viewing an opened invite leaves it alone",
			userID: "supplier-user",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "supplier-user").
					Return(supplierProfile("supplier-user", "supplier-1"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(testInvite(types.InviteStatusOpened), nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(testRfq(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "supplier-1").
					Return(true)
			},
			expectedStatus: types.InviteStatusOpened,
		},
		{
			name:   "owning agency view does not touch the status",
			userID: "agency-user",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "agency-user").
					Return(agencyProfile("agency-user", "agency-1"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(testInvite(types.InviteStatusInvited), nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(testRfq(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "agency-1").
					Return(true)
			},
			expectedStatus: types.InviteStatusInvited,
		},
		{
			name:   "unrelated supplier is denied",
			userID: "outsider",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "outsider").
					Return(supplierProfile("outsider", "supplier-9"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(testInvite(types.InviteStatusInvited), nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(testRfq(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "agency-1").
					Return(false)
			},
			expectedKind: types.KindPermissionDenied,
			expectErr:    true,
		},
		{
			name:   "missing invite",
			userID: "supplier-user",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "supplier-user").
					Return(supplierProfile("supplier-user", "supplier-1"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(nil, storage.ErrNotFound)
			},
			expectedKind: types.KindNotFound,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqinvites.Service.GetInvite")
			tt.setupMocks(m)

			detail, err := s.GetInvite(authedCtx(tt.userID), "invite-1")

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Fatalf("expected kind %v, got %v", tt.expectedKind, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if detail.InviteStatus != tt.expectedStatus {
				t.Fatalf("expected status %q, got %q", tt.expectedStatus, detail.InviteStatus)
			}
			if detail.Rfq == nil || detail.Rfq.ID != "rfq-1" {
				t.Fatal("expected invite detail to embed the parent RFQ")
			}
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		currentStatus types.InviteStatus
		target        types.InviteStatus
		skipLoad      bool
		expectedKind  types.ErrorKind
		expectErr     bool
	}{
		{
			name:          "agency closes a submitted invite",
			userID:        "agency-user",
			currentStatus: types.InviteStatusSubmitted,
			target:        types.InviteStatusClosed,
		},
		{
			name:          "status never reverts from submitted",
			userID:        "agency-user",
			currentStatus: types.InviteStatusSubmitted,
			target:        types.InviteStatusOpened,
			expectedKind:  types.KindConflict,
			expectErr:     true,
		},
		{
			name:          "closed invites stay closed",
			userID:        "agency-user",
			currentStatus: types.InviteStatusClosed,
			target:        types.InviteStatusOpened,
			expectedKind:  types.KindConflict,
			expectErr:     true,
		},
		{
			name:         "submitted cannot be set directly",
			userID:       "agency-user",
			target:       types.InviteStatusSubmitted,
			skipLoad:     true,
			expectedKind: types.KindValidation,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqinvites.Service.UpdateStatus")

			if !tt.skipLoad {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), tt.userID).
					Return(agencyProfile(tt.userID, "agency-1"), nil)
				m.storage.EXPECT().
					GetRfqInviteByID(gomock.Any(), "invite-1").
					Return(testInvite(tt.currentStatus), nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(testRfq(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionEdit, "agency-1").
					Return(true)
			}
			if !tt.expectErr {
				m.storage.EXPECT().
					UpdateInviteStatus(gomock.Any(), "invite-1", tt.target).
					Return(nil)
			}

			invite, err := s.UpdateStatus(authedCtx(tt.userID), "invite-1", tt.target)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Fatalf("expected kind %v, got %v", tt.expectedKind, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invite.InviteStatus != tt.target {
				t.Fatalf("expected status %q, got %q", tt.target, invite.InviteStatus)
			}
		})
	}
}

func TestService_SubmitQuotation(t *testing.T) {
	input := &SubmitQuotationInput{
		PdfURL: "https://cdn.example.com/quotations/q1.pdf",
		Notes:  "Includes rigging and crew.",
	}

	t.Run("first submission marks the invite submitted and notifies the agency", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.SubmitQuotation")
		passthroughTx(m)

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "supplier-user").
			Return(supplierProfile("supplier-user", "supplier-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusOpened), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceQuotation, authorization.ActionCreate, "supplier-1").
			Return(true)

		m.storage.EXPECT().
			MarkQuotationsReplaced(gomock.Any(), "invite-1").
			Return(nil)
		m.storage.EXPECT().
			CreateQuotation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *types.Quotation) (*types.Quotation, error) {
				if q.RfqInviteID != "invite-1" {
					t.Errorf("expected invite invite-1, got %q", q.RfqInviteID)
				}
				if q.SupplierID != "supplier-1" {
					t.Errorf("expected supplier supplier-1, got %q", q.SupplierID)
				}
				if q.PdfURL != input.PdfURL {
					t.Errorf("expected pdf %q, got %q", input.PdfURL, q.PdfURL)
				}
				q.ID = "quotation-1"
				q.Version = 1
				q.Status = types.QuotationStatusSubmitted
				return q, nil
			})
		m.storage.EXPECT().
			UpdateInviteStatus(gomock.Any(), "invite-1", types.InviteStatusSubmitted).
			Return(nil)

		m.storage.EXPECT().
			GetRfqByID(gomock.Any(), "rfq-1").
			Return(testRfq(), nil)
		m.storage.EXPECT().
			GetAgencyByID(gomock.Any(), "agency-1").
			Return(&types.Agency{ID: "agency-1", Name: "Bright Events", Email: "ops@bright.events"}, nil)
		m.storage.EXPECT().
			GetSupplierByID(gomock.Any(), "supplier-1").
			Return(&types.Supplier{ID: "supplier-1", Name: "StageCraft AV"}, nil)
		m.mailer.EXPECT().
			SendQuotationSubmittedEmail(gomock.Any(), "ops@bright.events", "StageCraft AV", "Spring gala production").
			Return(nil)

		quotation, err := s.SubmitQuotation(authedCtx("supplier-user"), "invite-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotation.ID != "quotation-1" || quotation.Version != 1 {
			t.Fatalf("unexpected quotation: %+v", quotation)
		}
	})

	t.Run("email failure does not fail the submission", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.SubmitQuotation")
		passthroughTx(m)

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "supplier-user").
			Return(supplierProfile("supplier-user", "supplier-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusSubmitted), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceQuotation, authorization.ActionCreate, "supplier-1").
			Return(true)

		m.storage.EXPECT().MarkQuotationsReplaced(gomock.Any(), "invite-1").Return(nil)
		m.storage.EXPECT().
			CreateQuotation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *types.Quotation) (*types.Quotation, error) {
				q.ID = "quotation-2"
				q.Version = 2
				return q, nil
			})
		m.storage.EXPECT().
			UpdateInviteStatus(gomock.Any(), "invite-1", types.InviteStatusSubmitted).
			Return(nil)

		m.storage.EXPECT().GetRfqByID(gomock.Any(), "rfq-1").Return(testRfq(), nil)
		m.storage.EXPECT().
			GetAgencyByID(gomock.Any(), "agency-1").
			Return(&types.Agency{ID: "agency-1", Email: "ops@bright.events"}, nil)
		m.storage.EXPECT().
			GetSupplierByID(gomock.Any(), "supplier-1").
			Return(&types.Supplier{ID: "supplier-1", Name: "StageCraft AV"}, nil)
		m.mailer.EXPECT().
			SendQuotationSubmittedEmail(gomock.Any(), "ops@bright.events", "StageCraft AV", "Spring gala production").
			Return(errors.New("smtp unavailable"))
		m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

		quotation, err := s.SubmitQuotation(authedCtx("supplier-user"), "invite-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotation.Version != 2 {
			t.Fatalf("expected version 2, got %d", quotation.Version)
		}
	})

	t.Run("closed invites reject quotations", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.SubmitQuotation")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "supplier-user").
			Return(supplierProfile("supplier-user", "supplier-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusClosed), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceQuotation, authorization.ActionCreate, "supplier-1").
			Return(true)

		_, err := s.SubmitQuotation(authedCtx("supplier-user"), "invite-1", input)
		if kind := types.KindOf(err); kind != types.KindConflict {
			t.Fatalf("expected conflict, got %v (%v)", kind, err)
		}
	})

	t.Run("only the invited supplier can submit", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.SubmitQuotation")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "agency-user").
			Return(agencyProfile("agency-user", "agency-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusOpened), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceQuotation, authorization.ActionCreate, "supplier-1").
			Return(false)

		_, err := s.SubmitQuotation(authedCtx("agency-user"), "invite-1", input)
		if kind := types.KindOf(err); kind != types.KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v (%v)", kind, err)
		}
	})

	t.Run("storage failure rolls the transaction back", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.SubmitQuotation")
		passthroughTx(m)

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "supplier-user").
			Return(supplierProfile("supplier-user", "supplier-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusOpened), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceQuotation, authorization.ActionCreate, "supplier-1").
			Return(true)

		m.storage.EXPECT().MarkQuotationsReplaced(gomock.Any(), "invite-1").Return(nil)
		m.storage.EXPECT().
			CreateQuotation(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("insert failed"))

		_, err := s.SubmitQuotation(authedCtx("supplier-user"), "invite-1", input)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestService_ListQuotations(t *testing.T) {
	s, m := newTestService(t)
	expectSpan(m, "rfqinvites.Service.ListQuotations")

	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "supplier-user").
		Return(supplierProfile("supplier-user", "supplier-1"), nil)
	m.storage.EXPECT().
		GetRfqInviteByID(gomock.Any(), "invite-1").
		Return(testInvite(types.InviteStatusSubmitted), nil)
	m.storage.EXPECT().
		GetRfqByID(gomock.Any(), "rfq-1").
		Return(testRfq(), nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "supplier-1").
		Return(true)
	m.storage.EXPECT().
		ListQuotationsByInvite(gomock.Any(), "invite-1").
		Return([]*types.Quotation{
			{ID: "quotation-2", Version: 2, Status: types.QuotationStatusSubmitted},
			{ID: "quotation-1", Version: 1, Status: types.QuotationStatusReplaced},
		}, nil)

	quotations, err := s.ListQuotations(authedCtx("supplier-user"), "invite-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotations) != 2 {
		t.Fatalf("expected 2 quotations, got %d", len(quotations))
	}
	if quotations[0].Status != types.QuotationStatusSubmitted {
		t.Fatalf("expected the current version first, got %+v", quotations[0])
	}
}

func TestService_GetQuotationDownload(t *testing.T) {
	quotation := &types.Quotation{
		ID:          "quotation-1",
		RfqInviteID: "invite-1",
		SupplierID:  "supplier-1",
		PdfURL:      "https://cdn.example.com/quotations/invite-1/offer_v1.pdf",
		Status:      types.QuotationStatusSubmitted,
		Version:     1,
	}

	t.Run("invite supplier gets a signed link", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.GetQuotationDownload")

		m.storage.EXPECT().
			GetQuotationByID(gomock.Any(), "quotation-1").
			Return(quotation, nil)
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "supplier-user").
			Return(supplierProfile("supplier-user", "supplier-1"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusSubmitted), nil)
		m.storage.EXPECT().
			GetRfqByID(gomock.Any(), "rfq-1").
			Return(testRfq(), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "supplier-1").
			Return(true)
		m.objects.EXPECT().
			PresignedURL(gomock.Any(), quotation.PdfURL).
			Return("https://bucket.example.com/quotations/invite-1/offer_v1.pdf?X-Amz-Signature=abc", nil)

		url, err := s.GetQuotationDownload(authedCtx("supplier-user"), "quotation-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url == "" || url == quotation.PdfURL {
			t.Fatalf("expected a signed URL, got %q", url)
		}
	})

	t.Run("outsider is denied", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.GetQuotationDownload")

		m.storage.EXPECT().
			GetQuotationByID(gomock.Any(), "quotation-1").
			Return(quotation, nil)
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "other-user").
			Return(supplierProfile("other-user", "supplier-9"), nil)
		m.storage.EXPECT().
			GetRfqInviteByID(gomock.Any(), "invite-1").
			Return(testInvite(types.InviteStatusSubmitted), nil)
		m.storage.EXPECT().
			GetRfqByID(gomock.Any(), "rfq-1").
			Return(testRfq(), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceRfqInvite, authorization.ActionView, "agency-1").
			Return(false)

		_, err := s.GetQuotationDownload(authedCtx("other-user"), "quotation-1")
		if types.KindOf(err) != types.KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v", err)
		}
	})

	t.Run("unknown quotation", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "rfqinvites.Service.GetQuotationDownload")

		m.storage.EXPECT().
			GetQuotationByID(gomock.Any(), "missing").
			Return(nil, storage.ErrNotFound)

		_, err := s.GetQuotationDownload(authedCtx("supplier-user"), "missing")
		if types.KindOf(err) != types.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
