// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func strPtr(s string) *string { return &s }

func TestAuthorizer_CanAccess(t *testing.T) {
	agencyAdmin := &types.Profile{
		UserID:   "user-1",
		Role:     types.RoleAgencyAdmin,
		AgencyID: strPtr("agency-1"),
	}
	agencyMember := &types.Profile{
		UserID:   "user-2",
		Role:     types.RoleAgencyMember,
		AgencyID: strPtr("agency-1"),
	}
	supplierAdmin := &types.Profile{
		UserID:     "user-3",
		Role:       types.RoleSupplierAdmin,
		SupplierID: strPtr("supplier-1"),
	}
	supplierMember := &types.Profile{
		UserID:     "user-4",
		Role:       types.RoleSupplierMember,
		SupplierID: strPtr("supplier-1"),
	}
	admin := &types.Profile{
		UserID: "user-5",
		Role:   types.RoleAdmin,
	}

	testCases := []struct {
		name     string
		profile  *types.Profile
		resource Resource
		action   Action
		orgID    string
		expected bool
	}{
		{"nil profile denied", nil, ResourceCategory, ActionView, "", false},
		{"platform admin allowed everywhere", admin, ResourceCategory, ActionDelete, "", true},

		{"anyone views categories", supplierMember, ResourceCategory, ActionView, "", true},
		{"non-admin cannot write categories", agencyAdmin, ResourceCategory, ActionCreate, "", false},

		{"anyone views agencies", supplierMember, ResourceAgency, ActionView, "agency-1", true},
		{"agency member edits own agency", agencyMember, ResourceAgency, ActionEdit, "agency-1", true},
		{"agency member cannot edit other agency", agencyMember, ResourceAgency, ActionEdit, "agency-2", false},
		{"supplier cannot edit agency", supplierAdmin, ResourceAgency, ActionEdit, "agency-1", false},

		{"supplier member edits own supplier", supplierMember, ResourceSupplier, ActionEdit, "supplier-1", true},
		{"supplier member cannot edit other supplier", supplierMember, ResourceSupplier, ActionEdit, "supplier-2", false},

		{"gallery edit requires ownership", agencyMember, ResourceGallery, ActionEdit, "agency-1", true},
		{"gallery edit denied for other org", agencyMember, ResourceGallery, ActionEdit, "agency-2", false},

		{"agency manages own rfqs", agencyMember, ResourceRfq, ActionCreate, "agency-1", true},
		{"supplier cannot create rfqs", supplierAdmin, ResourceRfq, ActionCreate, "agency-1", false},

		{"agency creates rfq invites", agencyMember, ResourceRfqInvite, ActionCreate, "agency-1", true},
		{"supplier views invite addressed to it", supplierMember, ResourceRfqInvite, ActionView, "supplier-1", true},
		{"supplier cannot create rfq invites", supplierMember, ResourceRfqInvite, ActionCreate, "supplier-1", false},

		{"supplier submits quotation", supplierMember, ResourceQuotation, ActionCreate, "supplier-1", true},
		{"agency cannot submit quotation", agencyAdmin, ResourceQuotation, ActionCreate, "agency-1", false},
		{"agency views quotations on own rfq", agencyAdmin, ResourceQuotation, ActionView, "agency-1", true},

		{"org member views team", agencyMember, ResourceTeam, ActionView, "agency-1", true},
		{"org member cannot invite", agencyMember, ResourceTeam, ActionCreate, "agency-1", false},
		{"org admin invites", agencyAdmin, ResourceTeam, ActionCreate, "agency-1", true},
		{"supplier admin revokes own invites", supplierAdmin, ResourceTeam, ActionDelete, "supplier-1", true},
		{"org admin cannot manage other org team", agencyAdmin, ResourceTeam, ActionManage, "agency-2", false},

		{"waitlist signup open", supplierMember, ResourceWaitlist, ActionCreate, "", true},
		{"waitlist listing admin only", agencyAdmin, ResourceWaitlist, ActionView, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CanAccess").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			mockSecurity.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()

			a := NewAuthorizer(mockTracer, mockMonitor, mockLogger)

			result := a.CanAccess(context.Background(), tc.profile, tc.resource, tc.action, tc.orgID)
			if result != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, result)
			}
		})
	}
}
