// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"time"

	"github.com/quoteportal/rfq-service/internal/logging"
)

var _ EmailInterface = (*NoopClient)(nil)

// NoopClient logs instead of sending, for environments without mail
// credentials.
type NoopClient struct {
	logger logging.LoggerInterface
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) SendOrgInviteEmail(ctx context.Context, to, orgName, role, inviteURL string, expiresAt time.Time) error {
	c.logger.Infof("mail disabled, skipping org invite email to %s for %s", to, orgName)
	return nil
}

func (c *NoopClient) SendRfqInviteEmail(ctx context.Context, to, supplierName, rfqTitle, agencyName string, deadline time.Time) error {
	c.logger.Infof("mail disabled, skipping RFQ invite email to %s for %q", to, rfqTitle)
	return nil
}

func (c *NoopClient) SendQuotationSubmittedEmail(ctx context.Context, to, supplierName, rfqTitle string) error {
	c.logger.Infof("mail disabled, skipping quotation email to %s for %q", to, rfqTitle)
	return nil
}

func (c *NoopClient) SendWaitlistWelcomeEmail(ctx context.Context, to, fullName string) error {
	c.logger.Infof("mail disabled, skipping waitlist email to %s", to)
	return nil
}
