// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqs

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_rfqs.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rfqs -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	mailer  *MockEmailInterface
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
		authz:   NewMockAuthorizerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.storage, m.db, m.mailer, m.authz, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
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

func agencyProfile(userID, agencyID string) *types.Profile {
	return &types.Profile{UserID: userID, Role: types.RoleAgencyAdmin, AgencyID: &agencyID}
}

func TestService_CreateRfq(t *testing.T) {
	agencyID := "agency-1"
	deadline := time.Now().Add(14 * 24 * time.Hour)
	input := &CreateRfqInput{
		Title:      "Spring gala production",
		ClientName: "Acme Corp",
		Scope:      "Full AV production for a 300-person gala.",
		DeadlineAt: deadline,
	}

	tests := []struct {
		name         string
		setupMocks   func(m serviceMocks)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name: "creates a draft owned by the caller's agency",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(agencyProfile("user-1", agencyID), nil)
				m.storage.EXPECT().
					CreateRfq(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rfq *types.Rfq) (*types.Rfq, error) {
						if rfq.AgencyID != agencyID {
							t.Errorf("expected agency %q, got %q", agencyID, rfq.AgencyID)
						}
						if rfq.Status != types.RfqStatusDraft {
							t.Errorf("expected draft status, got %q", rfq.Status)
						}
						if rfq.CreatedByUserID != "user-1" {
							t.Errorf("expected creator user-1, got %q", rfq.CreatedByUserID)
						}
						rfq.ID = "rfq-1"
						return rfq, nil
					})
			},
		},
		{
			name: "caller without an agency is rejected",
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1"}, nil)
			},
			expectedKind: types.KindPermissionDenied,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqs.Service.CreateRfq")
			tt.setupMocks(m)

			rfq, err := s.CreateRfq(authedCtx("user-1"), input)

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
			if rfq.ID != "rfq-1" {
				t.Errorf("expected RFQ ID rfq-1, got %q", rfq.ID)
			}
		})
	}
}

func TestService_SendRfq(t *testing.T) {
	agencyID := "agency-1"
	deadline := time.Now().Add(7 * 24 * time.Hour)

	draft := func() *types.Rfq {
		return &types.Rfq{
			ID:         "rfq-1",
			AgencyID:   agencyID,
			Title:      "Spring gala production",
			Status:     types.RfqStatusDraft,
			DeadlineAt: deadline,
		}
	}

	tests := []struct {
		name            string
		supplierIDs     []string
		setupMocks      func(m serviceMocks)
		expectedKind    types.ErrorKind
		expectedMessage string
		expectErr       bool
	}{
		{
			name:        "dispatch creates invites, flips status and emails suppliers",
			supplierIDs: []string{"supplier-1", "supplier-2"},
			setupMocks: func(m serviceMocks) {
				profile := agencyProfile("user-1", agencyID)
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(draft(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
					Return(true)
				passthroughTx(m)
				m.storage.EXPECT().
					CreateRfqInvite(gomock.Any(), "rfq-1", "supplier-1").
					Return(&types.RfqInvite{ID: "inv-1"}, nil)
				m.storage.EXPECT().
					CreateRfqInvite(gomock.Any(), "rfq-1", "supplier-2").
					Return(&types.RfqInvite{ID: "inv-2"}, nil)
				m.storage.EXPECT().
					UpdateRfq(gomock.Any(), gomock.Any(), []string{"status"}).
					DoAndReturn(func(_ context.Context, rfq *types.Rfq, _ []string) error {
						if rfq.Status != types.RfqStatusSent {
							t.Errorf("expected sent status, got %q", rfq.Status)
						}
						return nil
					})
				m.storage.EXPECT().
					GetAgencyByID(gomock.Any(), agencyID).
					Return(&types.Agency{ID: agencyID, Name: "Studio North"}, nil)
				m.storage.EXPECT().
					GetSupplierByID(gomock.Any(), "supplier-1").
					Return(&types.Supplier{ID: "supplier-1", Name: "Printworks", Email: "sales@printworks.test"}, nil)
				m.storage.EXPECT().
					GetSupplierByID(gomock.Any(), "supplier-2").
					Return(&types.Supplier{ID: "supplier-2", Name: "AV Hire", Email: "hello@avhire.test"}, nil)
				m.mailer.EXPECT().
					SendRfqInviteEmail(gomock.Any(), "sales@printworks.test", "Printworks", "Spring gala production", "Studio North", gomock.Any()).
					Return(nil)
				m.mailer.EXPECT().
					SendRfqInviteEmail(gomock.Any(), "hello@avhire.test", "AV Hire", "Spring gala production", "Studio North", gomock.Any()).
					Return(nil)
			},
		},
		{
			name:        "email failure does not fail the dispatch",
			supplierIDs: []string{"supplier-1"},
			setupMocks: func(m serviceMocks) {
				profile := agencyProfile("user-1", agencyID)
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(draft(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
					Return(true)
				passthroughTx(m)
				m.storage.EXPECT().
					CreateRfqInvite(gomock.Any(), "rfq-1", "supplier-1").
					Return(&types.RfqInvite{ID: "inv-1"}, nil)
				m.storage.EXPECT().
					UpdateRfq(gomock.Any(), gomock.Any(), []string{"status"}).
					Return(nil)
				m.storage.EXPECT().
					GetAgencyByID(gomock.Any(), agencyID).
					Return(&types.Agency{ID: agencyID, Name: "Studio North"}, nil)
				m.storage.EXPECT().
					GetSupplierByID(gomock.Any(), "supplier-1").
					Return(&types.Supplier{ID: "supplier-1", Name: "Printworks", Email: "sales@printworks.test"}, nil)
				m.mailer.EXPECT().
					SendRfqInviteEmail(gomock.Any(), "sales@printworks.test", "Printworks", "Spring gala production", "Studio North", gomock.Any()).
					Return(errors.New("ses unavailable"))
				m.logger.EXPECT().
					Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "already invited supplier is skipped",
			supplierIDs: []string{"supplier-1"},
			setupMocks: func(m serviceMocks) {
				profile := agencyProfile("user-1", agencyID)
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(draft(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
					Return(true)
				passthroughTx(m)
				m.storage.EXPECT().
					CreateRfqInvite(gomock.Any(), "rfq-1", "supplier-1").
					Return(nil, storage.ErrDuplicateKey)
				m.storage.EXPECT().
					UpdateRfq(gomock.Any(), gomock.Any(), []string{"status"}).
					Return(nil)
				m.storage.EXPECT().
					GetAgencyByID(gomock.Any(), agencyID).
					Return(&types.Agency{ID: agencyID, Name: "Studio North"}, nil)
				m.storage.EXPECT().
					GetSupplierByID(gomock.Any(), "supplier-1").
					Return(&types.Supplier{ID: "supplier-1", Name: "Printworks", Email: "sales@printworks.test"}, nil)
				m.mailer.EXPECT().
					SendRfqInviteEmail(gomock.Any(), "sales@printworks.test", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:        "caller without an agency cannot dispatch",
			supplierIDs: []string{"supplier-1"},
			setupMocks: func(m serviceMocks) {
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(&types.Profile{UserID: "user-1", Role: types.RoleSupplierAdmin}, nil)
			},
			expectedKind:    types.KindPermissionDenied,
			expectedMessage: "User must be part of an agency to create RFQ invites",
			expectErr:       true,
		},
		{
			name:        "sent RFQ cannot be dispatched again",
			supplierIDs: []string{"supplier-1"},
			setupMocks: func(m serviceMocks) {
				profile := agencyProfile("user-1", agencyID)
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				sent := draft()
				sent.Status = types.RfqStatusSent
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(sent, nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
					Return(true)
			},
			expectedKind: types.KindConflict,
			expectErr:    true,
		},
		{
			name:        "empty supplier list rejected",
			supplierIDs: nil,
			setupMocks: func(m serviceMocks) {
				profile := agencyProfile("user-1", agencyID)
				m.storage.EXPECT().
					GetProfileByUserID(gomock.Any(), "user-1").
					Return(profile, nil)
				m.storage.EXPECT().
					GetRfqByID(gomock.Any(), "rfq-1").
					Return(draft(), nil)
				m.authz.EXPECT().
					CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
					Return(true)
			},
			expectedKind: types.KindValidation,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqs.Service.SendRfq")
			tt.setupMocks(m)

			rfq, err := s.SendRfq(authedCtx("user-1"), "rfq-1", tt.supplierIDs)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Errorf("expected error kind %v, got %v", tt.expectedKind, kind)
				}
				if tt.expectedMessage != "" && err.Error() != tt.expectedMessage {
					t.Errorf("expected message %q, got %q", tt.expectedMessage, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if rfq.Status != types.RfqStatusSent {
				t.Errorf("expected sent status, got %q", rfq.Status)
			}
		})
	}
}

func TestService_UpdateRfqStatus(t *testing.T) {
	agencyID := "agency-1"
	closed := types.RfqStatusClosed
	awarded := types.RfqStatusAwarded
	sent := types.RfqStatusSent
	bogus := types.RfqStatus("archived")

	tests := []struct {
		name         string
		current      types.RfqStatus
		next         *types.RfqStatus
		setupMocks   func(m serviceMocks)
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{
			name:    "closing a sent RFQ closes its invites in one transaction",
			current: types.RfqStatusSent,
			next:    &closed,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().
					UpdateRfq(gomock.Any(), gomock.Any(), []string{"status"}).
					DoAndReturn(func(_ context.Context, rfq *types.Rfq, _ []string) error {
						if rfq.Status != types.RfqStatusClosed {
							t.Errorf("expected closed status, got %q", rfq.Status)
						}
						return nil
					})
				m.storage.EXPECT().
					CloseInvitesByRfq(gomock.Any(), "rfq-1").
					Return(nil)
			},
		},
		{
			name:    "awarding a sent RFQ closes its invites",
			current: types.RfqStatusSent,
			next:    &awarded,
			setupMocks: func(m serviceMocks) {
				passthroughTx(m)
				m.storage.EXPECT().
					UpdateRfq(gomock.Any(), gomock.Any(), []string{"status"}).
					Return(nil)
				m.storage.EXPECT().
					CloseInvitesByRfq(gomock.Any(), "rfq-1").
					Return(nil)
			},
		},
		{
			name:         "draft cannot be closed directly",
			current:      types.RfqStatusDraft,
			next:         &closed,
			setupMocks:   func(m serviceMocks) {},
			expectedKind: types.KindConflict,
			expectErr:    true,
		},
		{
			name:         "terminal RFQ cannot be reopened",
			current:      types.RfqStatusClosed,
			next:         &sent,
			setupMocks:   func(m serviceMocks) {},
			expectedKind: types.KindConflict,
			expectErr:    true,
		},
		{
			name:         "unknown status rejected",
			current:      types.RfqStatusSent,
			next:         &bogus,
			setupMocks:   func(m serviceMocks) {},
			expectedKind: types.KindValidation,
			expectErr:    true,
		},
		{
			name:       "re-applying the current status is a no-op",
			current:    types.RfqStatusSent,
			next:       &sent,
			setupMocks: func(m serviceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqs.Service.UpdateRfq")

			profile := agencyProfile("user-1", agencyID)
			m.storage.EXPECT().
				GetProfileByUserID(gomock.Any(), "user-1").
				Return(profile, nil)
			m.storage.EXPECT().
				GetRfqByID(gomock.Any(), "rfq-1").
				Return(&types.Rfq{ID: "rfq-1", AgencyID: agencyID, Status: tt.current}, nil)
			m.authz.EXPECT().
				CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
				Return(true)
			tt.setupMocks(m)

			rfq, err := s.UpdateRfq(authedCtx("user-1"), "rfq-1", &UpdateRfqInput{Status: tt.next})

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
			if rfq.Status != *tt.next {
				t.Errorf("expected status %q, got %q", *tt.next, rfq.Status)
			}
		})
	}
}

func TestService_DeleteRfq(t *testing.T) {
	agencyID := "agency-1"

	tests := []struct {
		name         string
		status       types.RfqStatus
		deleteCalled bool
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{name: "draft can be deleted", status: types.RfqStatusDraft, deleteCalled: true},
		{name: "sent cannot be deleted", status: types.RfqStatusSent, expectedKind: types.KindConflict, expectErr: true},
		{name: "closed cannot be deleted", status: types.RfqStatusClosed, expectedKind: types.KindConflict, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "rfqs.Service.DeleteRfq")

			profile := agencyProfile("user-1", agencyID)
			m.storage.EXPECT().
				GetProfileByUserID(gomock.Any(), "user-1").
				Return(profile, nil)
			m.storage.EXPECT().
				GetRfqByID(gomock.Any(), "rfq-1").
				Return(&types.Rfq{ID: "rfq-1", AgencyID: agencyID, Status: tt.status}, nil)
			m.authz.EXPECT().
				CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionDelete, agencyID).
				Return(true)
			if tt.deleteCalled {
				m.storage.EXPECT().DeleteRfq(gomock.Any(), "rfq-1").Return(nil)
			}

			err := s.DeleteRfq(authedCtx("user-1"), "rfq-1")

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
		})
	}
}

func TestService_AppendAttachments(t *testing.T) {
	agencyID := "agency-1"

	s, m := newTestService(t)
	expectSpan(m, "rfqs.Service.AppendAttachments")

	profile := agencyProfile("user-1", agencyID)
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(profile, nil)
	m.storage.EXPECT().
		GetRfqByID(gomock.Any(), "rfq-1").
		Return(&types.Rfq{
			ID:             "rfq-1",
			AgencyID:       agencyID,
			Status:         types.RfqStatusSent,
			AttachmentsURL: types.StringList{"https://cdn.test/old.pdf"},
		}, nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionEdit, agencyID).
		Return(true)
	m.storage.EXPECT().
		UpdateRfq(gomock.Any(), gomock.Any(), []string{"attachments_url"}).
		DoAndReturn(func(_ context.Context, rfq *types.Rfq, _ []string) error {
			if len(rfq.AttachmentsURL) != 2 {
				t.Errorf("expected 2 attachments, got %d", len(rfq.AttachmentsURL))
			}
			return nil
		})

	rfq, err := s.AppendAttachments(authedCtx("user-1"), "rfq-1", []string{"https://cdn.test/new.pdf"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rfq.AttachmentsURL) != 2 {
		t.Errorf("expected appended attachment list, got %v", rfq.AttachmentsURL)
	}
}

func TestService_GetRfqDeniedForOtherAgency(t *testing.T) {
	s, m := newTestService(t)
	expectSpan(m, "rfqs.Service.GetRfq")

	otherAgency := "agency-2"
	profile := agencyProfile("user-1", otherAgency)
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(profile, nil)
	m.storage.EXPECT().
		GetRfqByID(gomock.Any(), "rfq-1").
		Return(&types.Rfq{ID: "rfq-1", AgencyID: "agency-1", Status: types.RfqStatusSent}, nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionView, "agency-1").
		Return(false)

	_, err := s.GetRfq(authedCtx("user-1"), "rfq-1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if types.KindOf(err) != types.KindPermissionDenied {
		t.Errorf("expected permission denied, got %v", types.KindOf(err))
	}
}

func TestService_ListQuotations(t *testing.T) {
	agencyID := "agency-1"

	s, m := newTestService(t)
	expectSpan(m, "rfqs.Service.ListQuotations")

	profile := agencyProfile("user-1", agencyID)
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(profile, nil)
	m.storage.EXPECT().
		GetRfqByID(gomock.Any(), "rfq-1").
		Return(&types.Rfq{ID: "rfq-1", AgencyID: agencyID, Status: types.RfqStatusSent}, nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), profile, authorization.ResourceRfq, authorization.ActionView, agencyID).
		Return(true)
	m.storage.EXPECT().
		ListQuotationsByRfq(gomock.Any(), "rfq-1").
		Return([]*types.Quotation{{ID: "q-1", Version: 2}}, nil)

	quotations, err := s.ListQuotations(authedCtx("user-1"), "rfq-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(quotations) != 1 {
		t.Fatalf("expected 1 quotation, got %d", len(quotations))
	}
}
