// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestInviteStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from     InviteStatus
		to       InviteStatus
		expected bool
	}{
		{InviteStatusInvited, InviteStatusOpened, true},
		{InviteStatusInvited, InviteStatusSubmitted, true},
		{InviteStatusInvited, InviteStatusClosed, true},
		{InviteStatusOpened, InviteStatusSubmitted, true},
		{InviteStatusOpened, InviteStatusInvited, false},
		{InviteStatusSubmitted, InviteStatusOpened, false},
		{InviteStatusSubmitted, InviteStatusClosed, true},
		{InviteStatusClosed, InviteStatusOpened, false},
		{InviteStatusClosed, InviteStatusSubmitted, false},
		// Re-applying the current status is an idempotent no-op.
		{InviteStatusOpened, InviteStatusOpened, true},
		{InviteStatusClosed, InviteStatusClosed, true},
		{InviteStatus("bogus"), InviteStatusOpened, false},
		{InviteStatusInvited, InviteStatus("bogus"), false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	if !RoleAgencyMember.IsAgency() || RoleAgencyMember.IsSupplier() {
		t.Error("agency_member should be an agency role")
	}
	if !RoleSupplierAdmin.IsSupplier() || RoleSupplierAdmin.IsAgency() {
		t.Error("supplier_admin should be a supplier role")
	}
	if !RoleAgencyAdmin.IsOrgAdmin() || !RoleSupplierAdmin.IsOrgAdmin() {
		t.Error("org admin roles should report IsOrgAdmin")
	}
	if RoleAgencyMember.IsOrgAdmin() || RoleAdmin.IsOrgAdmin() {
		t.Error("members and platform admins are not org admins")
	}
}

func TestProfile_InOrganization(t *testing.T) {
	agencyID := "agency-1"

	p := &Profile{UserID: "user-1"}
	if p.InOrganization() {
		t.Error("profile without org links should not be in an organization")
	}

	p.AgencyID = &agencyID
	if !p.InOrganization() {
		t.Error("profile with agency link should be in an organization")
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"not found", NewNotFoundError("missing"), KindNotFound},
		{"permission denied", NewPermissionDeniedError("denied"), KindPermissionDenied},
		{"validation", NewValidationError("bad input"), KindValidation},
		{"conflict", NewConflictError("duplicate"), KindConflict},
		{"upstream", NewUpstreamError("provider down", errors.New("dial timeout")), KindUpstream},
		{"wrapped service error", fmt.Errorf("context: %w", NewConflictError("duplicate")), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestUpstreamError_PreservesCause(t *testing.T) {
	cause := errors.New("dial timeout")
	err := NewUpstreamError("mail provider unavailable", cause)

	if err.Error() != "mail provider unavailable" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestStringList_Scan(t *testing.T) {
	// Fresh rows carry the column default '[]'.
	var fromDefault StringList
	if err := fromDefault.Scan([]byte("[]")); err != nil {
		t.Fatalf("unexpected error scanning column default: %v", err)
	}
	if len(fromDefault) != 0 {
		t.Errorf("expected empty list, got %v", fromDefault)
	}

	var populated StringList
	if err := populated.Scan([]byte(`["https://cdn.example.com/a.pdf"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(populated) != 1 || populated[0] != "https://cdn.example.com/a.pdf" {
		t.Errorf("unexpected list: %v", populated)
	}

	var fromNull StringList
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("unexpected error scanning NULL: %v", err)
	}
	if fromNull != nil {
		t.Errorf("expected nil list, got %v", fromNull)
	}
}
