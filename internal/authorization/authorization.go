// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

type Resource string

const (
	ResourceAgency    Resource = "agency"
	ResourceSupplier  Resource = "supplier"
	ResourceCategory  Resource = "category"
	ResourceGallery   Resource = "gallery"
	ResourceRfq       Resource = "rfq"
	ResourceRfqInvite Resource = "rfq_invite"
	ResourceQuotation Resource = "quotation"
	ResourceTeam      Resource = "team"
	ResourceWaitlist  Resource = "waitlist"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer holds every capability rule of the service. All permission
// decisions go through CanAccess so the rules live in one place.
type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	return &Authorizer{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CanAccess reports whether the profile may perform action on the resource
// owned by orgID. orgID is empty for resources without an owning
// organization, such as the category taxonomy.
func (a *Authorizer) CanAccess(ctx context.Context, profile *types.Profile, resource Resource, action Action, orgID string) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanAccess")
	defer span.End()

	if profile == nil {
		return false
	}

	if profile.Role == types.RoleAdmin {
		return true
	}

	allowed := a.canAccess(profile, resource, action, orgID)
	if !allowed {
		a.logger.Security().AuthzFailure(profile.UserID, string(resource)+":"+string(action))
	}

	return allowed
}

func (a *Authorizer) canAccess(profile *types.Profile, resource Resource, action Action, orgID string) bool {
	switch resource {
	case ResourceCategory:
		// The taxonomy is readable by any authenticated user, writable
		// only by platform admins.
		return action == ActionView

	case ResourceAgency:
		if action == ActionView {
			return true
		}
		return profile.Role.IsAgency() && a.ownsAgency(profile, orgID)

	case ResourceSupplier:
		if action == ActionView {
			return true
		}
		return profile.Role.IsSupplier() && a.ownsSupplier(profile, orgID)

	case ResourceGallery:
		if action == ActionView {
			return true
		}
		return a.ownsAgency(profile, orgID) || a.ownsSupplier(profile, orgID)

	case ResourceRfq:
		return profile.Role.IsAgency() && a.ownsAgency(profile, orgID)

	case ResourceRfqInvite:
		switch action {
		case ActionCreate, ActionManage:
			return profile.Role.IsAgency() && a.ownsAgency(profile, orgID)
		case ActionView, ActionEdit:
			// Suppliers act on invites addressed to their organization.
			return a.ownsAgency(profile, orgID) || a.ownsSupplier(profile, orgID)
		}
		return false

	case ResourceQuotation:
		switch action {
		case ActionCreate:
			return profile.Role.IsSupplier() && a.ownsSupplier(profile, orgID)
		case ActionView:
			return a.ownsAgency(profile, orgID) || a.ownsSupplier(profile, orgID)
		}
		return false

	case ResourceTeam:
		switch action {
		case ActionView:
			return a.ownsAgency(profile, orgID) || a.ownsSupplier(profile, orgID)
		case ActionCreate, ActionManage, ActionDelete:
			// Only org admins manage team membership.
			return profile.Role.IsOrgAdmin() &&
				(a.ownsAgency(profile, orgID) || a.ownsSupplier(profile, orgID))
		}
		return false

	case ResourceWaitlist:
		// Waitlist signup is open; management is admin only.
		return action == ActionCreate
	}

	return false
}

func (a *Authorizer) ownsAgency(profile *types.Profile, agencyID string) bool {
	return agencyID != "" && profile.AgencyID != nil && *profile.AgencyID == agencyID
}

func (a *Authorizer) ownsSupplier(profile *types.Profile, supplierID string) bool {
	return supplierID != "" && profile.SupplierID != nil && *profile.SupplierID == supplierID
}
