// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/quoteportal/rfq-service/internal/types"
)

type AuthorizerInterface interface {
	CanAccess(ctx context.Context, profile *types.Profile, resource Resource, action Action, orgID string) bool
}
