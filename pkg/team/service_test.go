// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_authz.go -source=../../internal/authorization/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const testBaseURL = "https://portal.test"

type serviceMocks struct {
	storage *MockStorageInterface
	db      *MockDBClientInterface
	kratos  *MockKratosInterface
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
		kratos:  NewMockKratosInterface(ctrl),
		mailer:  NewMockEmailInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.storage, m.db, m.kratos, m.mailer, m.authz, testBaseURL, 7*24*time.Hour, m.tracer, NewMockMonitorInterface(ctrl), m.logger)
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

func adminProfile(userID, agencyID string) *types.Profile {
	return &types.Profile{
		UserID:   userID,
		Email:    "admin@bright.events",
		Role:     types.RoleAgencyAdmin,
		AgencyID: &agencyID,
	}
}

func TestService_CreateInvite(t *testing.T) {
	agencyID := "agency-1"

	t.Run("admin invites a new member by email", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.CreateInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "admin-user").
			Return(adminProfile("admin-user", agencyID), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionCreate, agencyID).
			Return(true)

		var sentToken string
		m.storage.EXPECT().
			CreateOrgInvite(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *types.OrgInvite) (*types.OrgInvite, error) {
				if inv.OrgType != types.OrgTypeAgency || inv.OrgID != agencyID {
					t.Errorf("unexpected org target: %s %s", inv.OrgType, inv.OrgID)
				}
				if inv.Email != "new.member@bright.events" {
					t.Errorf("expected lowercased email, got %q", inv.Email)
				}
				if len(inv.TokenHash) != 64 {
					t.Errorf("expected sha256 hex token hash, got %q", inv.TokenHash)
				}
				if until := time.Until(inv.ExpiresAt); until < 6*24*time.Hour || until > 8*24*time.Hour {
					t.Errorf("expected roughly 7 day expiry, got %v", until)
				}
				inv.ID = "org-invite-1"
				return inv, nil
			})

		// Invitee already has an identity; no identity creation happens.
		m.kratos.EXPECT().
			GetIdentityIDByEmail(gomock.Any(), "new.member@bright.events").
			Return("identity-1", nil)

		m.storage.EXPECT().
			GetAgencyByID(gomock.Any(), agencyID).
			Return(&types.Agency{ID: agencyID, Name: "Bright Events"}, nil)
		m.mailer.EXPECT().
			SendOrgInviteEmail(gomock.Any(), "new.member@bright.events", "Bright Events", "agency_member", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _, inviteURL string, _ time.Time) error {
				if !strings.HasPrefix(inviteURL, testBaseURL+"/team/invites/accept?token=") {
					t.Errorf("unexpected invite URL %q", inviteURL)
				}
				sentToken = strings.TrimPrefix(inviteURL, testBaseURL+"/team/invites/accept?token=")
				return nil
			})

		invite, err := s.CreateInvite(authedCtx("admin-user"), &CreateInviteInput{
			Email: "New.Member@bright.events",
			Role:  types.RoleAgencyMember,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invite.ID != "org-invite-1" {
			t.Fatalf("unexpected invite: %+v", invite)
		}
		if len(sentToken) != 64 {
			t.Fatalf("expected a 32-byte hex token in the email link, got %q", sentToken)
		}
		if sentToken == invite.TokenHash {
			t.Fatal("raw token must not equal the stored hash")
		}
	})

	t.Run("unknown invitee gets an identity and recovery link", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.CreateInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "admin-user").
			Return(adminProfile("admin-user", agencyID), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionCreate, agencyID).
			Return(true)
		m.storage.EXPECT().
			CreateOrgInvite(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *types.OrgInvite) (*types.OrgInvite, error) {
				inv.ID = "org-invite-2"
				return inv, nil
			})

		m.kratos.EXPECT().
			GetIdentityIDByEmail(gomock.Any(), "fresh@bright.events").
			Return("", nil)
		m.kratos.EXPECT().
			CreateIdentity(gomock.Any(), "fresh@bright.events").
			Return("identity-2", nil)
		m.kratos.EXPECT().
			CreateRecoveryLink(gomock.Any(), "identity-2", gomock.Any()).
			Return("https://kratos.test/recovery", "code", nil)

		m.storage.EXPECT().
			GetAgencyByID(gomock.Any(), agencyID).
			Return(&types.Agency{ID: agencyID, Name: "Bright Events"}, nil)
		m.mailer.EXPECT().
			SendOrgInviteEmail(gomock.Any(), "fresh@bright.events", "Bright Events", "agency_member", gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := s.CreateInvite(authedCtx("admin-user"), &CreateInviteInput{
			Email: "fresh@bright.events",
			Role:  types.RoleAgencyMember,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("supplier role cannot be granted in an agency", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.CreateInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "admin-user").
			Return(adminProfile("admin-user", agencyID), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionCreate, agencyID).
			Return(true)

		_, err := s.CreateInvite(authedCtx("admin-user"), &CreateInviteInput{
			Email: "x@bright.events",
			Role:  types.RoleSupplierMember,
		})
		if kind := types.KindOf(err); kind != types.KindValidation {
			t.Fatalf("expected validation error, got %v (%v)", kind, err)
		}
	})

	t.Run("members cannot invite", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.CreateInvite")

		profile := adminProfile("member-user", agencyID)
		profile.Role = types.RoleAgencyMember
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "member-user").
			Return(profile, nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionCreate, agencyID).
			Return(false)

		_, err := s.CreateInvite(authedCtx("member-user"), &CreateInviteInput{
			Email: "x@bright.events",
			Role:  types.RoleAgencyMember,
		})
		if kind := types.KindOf(err); kind != types.KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v (%v)", kind, err)
		}
	})

	t.Run("duplicate pending invite is a conflict", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.CreateInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "admin-user").
			Return(adminProfile("admin-user", agencyID), nil)
		m.authz.EXPECT().
			CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionCreate, agencyID).
			Return(true)
		m.storage.EXPECT().
			CreateOrgInvite(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrDuplicateKey)

		_, err := s.CreateInvite(authedCtx("admin-user"), &CreateInviteInput{
			Email: "x@bright.events",
			Role:  types.RoleAgencyMember,
		})
		if kind := types.KindOf(err); kind != types.KindConflict {
			t.Fatalf("expected conflict, got %v (%v)", kind, err)
		}
	})
}

func TestService_AcceptInvite(t *testing.T) {
	agencyID := "agency-1"
	token := strings.Repeat("ab", 32)

	pendingInvite := func() *types.OrgInvite {
		return &types.OrgInvite{
			ID:        "org-invite-1",
			OrgType:   types.OrgTypeAgency,
			OrgID:     agencyID,
			Email:     "new.member@bright.events",
			Role:      types.RoleAgencyMember,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
	}

	joiner := func() *types.Profile {
		return &types.Profile{UserID: "new-user", Email: "New.Member@bright.events"}
	}

	t.Run("joins the organization and consumes the invite", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")
		passthroughTx(m)

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(joiner(), nil)
		m.storage.EXPECT().
			GetOrgInviteByTokenHash(gomock.Any(), hashToken(token)).
			Return(pendingInvite(), nil)
		m.storage.EXPECT().
			UpdateProfile(gomock.Any(), gomock.Any(), []string{"role", "agency_id"}).
			DoAndReturn(func(_ context.Context, p *types.Profile, _ []string) error {
				if p.Role != types.RoleAgencyMember {
					t.Errorf("expected role agency_member, got %q", p.Role)
				}
				if p.AgencyID == nil || *p.AgencyID != agencyID {
					t.Errorf("expected agency %q, got %v", agencyID, p.AgencyID)
				}
				return nil
			})
		m.storage.EXPECT().
			MarkOrgInviteAccepted(gomock.Any(), "org-invite-1", gomock.Any()).
			Return(nil)

		profile, err := s.AcceptInvite(authedCtx("new-user"), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.AgencyID == nil || *profile.AgencyID != agencyID {
			t.Fatalf("expected linked profile, got %+v", profile)
		}
	})

	t.Run("expired invitation", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")

		invite := pendingInvite()
		invite.ExpiresAt = time.Now().Add(-time.Hour)
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(joiner(), nil)
		m.storage.EXPECT().
			GetOrgInviteByTokenHash(gomock.Any(), hashToken(token)).
			Return(invite, nil)

		_, err := s.AcceptInvite(authedCtx("new-user"), token)
		if err == nil || err.Error() != "Invitation has expired" {
			t.Fatalf("expected expiry error, got %v", err)
		}
		if kind := types.KindOf(err); kind != types.KindConflict {
			t.Fatalf("expected conflict kind, got %v", kind)
		}
	})

	t.Run("already accepted invitation", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")

		accepted := time.Now().Add(-time.Hour)
		invite := pendingInvite()
		invite.AcceptedAt = &accepted
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(joiner(), nil)
		m.storage.EXPECT().
			GetOrgInviteByTokenHash(gomock.Any(), hashToken(token)).
			Return(invite, nil)

		_, err := s.AcceptInvite(authedCtx("new-user"), token)
		if err == nil || err.Error() != "Invitation has already been accepted" {
			t.Fatalf("expected already-accepted error, got %v", err)
		}
	})

	t.Run("caller already in an organization", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(adminProfile("new-user", "agency-9"), nil)

		_, err := s.AcceptInvite(authedCtx("new-user"), token)
		if err == nil || err.Error() != "User already belongs to an organization" {
			t.Fatalf("expected already-in-org error, got %v", err)
		}
	})

	t.Run("invitation issued to a different email", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")

		profile := joiner()
		profile.Email = "someone.else@bright.events"
		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(profile, nil)
		m.storage.EXPECT().
			GetOrgInviteByTokenHash(gomock.Any(), hashToken(token)).
			Return(pendingInvite(), nil)

		_, err := s.AcceptInvite(authedCtx("new-user"), token)
		if kind := types.KindOf(err); kind != types.KindPermissionDenied {
			t.Fatalf("expected permission denied, got %v (%v)", kind, err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		s, m := newTestService(t)
		expectSpan(m, "team.Service.AcceptInvite")

		m.storage.EXPECT().
			GetProfileByUserID(gomock.Any(), "new-user").
			Return(joiner(), nil)
		m.storage.EXPECT().
			GetOrgInviteByTokenHash(gomock.Any(), hashToken(token)).
			Return(nil, storage.ErrNotFound)

		_, err := s.AcceptInvite(authedCtx("new-user"), token)
		if kind := types.KindOf(err); kind != types.KindNotFound {
			t.Fatalf("expected not found, got %v (%v)", kind, err)
		}
	})
}

func TestService_DeleteInvite(t *testing.T) {
	tests := []struct {
		name         string
		allowed      bool
		expectedKind types.ErrorKind
		expectErr    bool
	}{
		{name: "admin revokes a pending invite", allowed: true},
		{name: "member cannot revoke", allowed: false, expectedKind: types.KindPermissionDenied, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			expectSpan(m, "team.Service.DeleteInvite")

			m.storage.EXPECT().
				GetProfileByUserID(gomock.Any(), "user-1").
				Return(adminProfile("user-1", "agency-1"), nil)
			m.storage.EXPECT().
				GetOrgInviteByID(gomock.Any(), "org-invite-1").
				Return(&types.OrgInvite{ID: "org-invite-1", OrgType: types.OrgTypeAgency, OrgID: "agency-1"}, nil)
			m.authz.EXPECT().
				CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionDelete, "agency-1").
				Return(tt.allowed)
			if tt.allowed {
				m.storage.EXPECT().
					DeleteOrgInvite(gomock.Any(), "org-invite-1").
					Return(nil)
			}

			err := s.DeleteInvite(authedCtx("user-1"), "org-invite-1")

			if tt.expectErr {
				if kind := types.KindOf(err); kind != tt.expectedKind {
					t.Fatalf("expected kind %v, got %v (%v)", tt.expectedKind, kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	s, m := newTestService(t)
	expectSpan(m, "team.Service.ListMembers")

	supplierID := "supplier-1"
	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(&types.Profile{UserID: "user-1", Role: types.RoleSupplierMember, SupplierID: &supplierID}, nil)
	m.authz.EXPECT().
		CanAccess(gomock.Any(), gomock.Any(), authorization.ResourceTeam, authorization.ActionView, supplierID).
		Return(true)
	m.storage.EXPECT().
		ListProfilesByOrg(gomock.Any(), types.OrgTypeSupplier, supplierID).
		Return([]*types.Profile{{UserID: "user-1"}, {UserID: "user-2"}}, nil)

	members, err := s.ListMembers(authedCtx("user-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestService_ListInvitesRequiresOrg(t *testing.T) {
	s, m := newTestService(t)
	expectSpan(m, "team.Service.ListInvites")

	m.storage.EXPECT().
		GetProfileByUserID(gomock.Any(), "user-1").
		Return(&types.Profile{UserID: "user-1"}, nil)

	_, err := s.ListInvites(authedCtx("user-1"))
	if kind := types.KindOf(err); kind != types.KindPermissionDenied {
		t.Fatalf("expected permission denied, got %v (%v)", kind, err)
	}
}
