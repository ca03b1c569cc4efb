// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"time"
)

// EmailInterface sends the service's transactional email. Implementations
// must not block request handling on upstream failures longer than the
// context allows.
type EmailInterface interface {
	SendOrgInviteEmail(ctx context.Context, to, orgName, role, inviteURL string, expiresAt time.Time) error
	SendRfqInviteEmail(ctx context.Context, to, supplierName, rfqTitle, agencyName string, deadline time.Time) error
	SendQuotationSubmittedEmail(ctx context.Context, to, supplierName, rfqTitle string) error
	SendWaitlistWelcomeEmail(ctx context.Context, to, fullName string) error
}
