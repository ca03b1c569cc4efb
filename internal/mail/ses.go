// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

var _ EmailInterface = (*Client)(nil)

type Config struct {
	Region      string
	AccessKeyID string
	SecretKey   string
	FromAddress string
	FromName    string
	ReplyTo     string
}

type Client struct {
	ses  *sesv2.Client
	from string

	replyTo string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	if cfg.AccessKeyID == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("mail credentials are not configured")
	}

	cred := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithCredentialsProvider(cred),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	c := new(Client)
	c.ses = sesv2.NewFromConfig(awsCfg)
	c.from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	c.replyTo = cfg.ReplyTo

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}

func (c *Client) SendOrgInviteEmail(ctx context.Context, to, orgName, role, inviteURL string, expiresAt time.Time) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendOrgInviteEmail")
	defer span.End()

	return c.send(ctx, to, fmt.Sprintf("You've been invited to join %s", orgName), orgInviteTemplate, map[string]string{
		"OrgName":   orgName,
		"RoleLabel": roleLabel(role),
		"InviteURL": inviteURL,
		"ExpiresAt": expiresAt.Format("2 January 2006"),
	})
}

func (c *Client) SendRfqInviteEmail(ctx context.Context, to, supplierName, rfqTitle, agencyName string, deadline time.Time) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendRfqInviteEmail")
	defer span.End()

	return c.send(ctx, to, fmt.Sprintf("New RFQ: %s", rfqTitle), rfqInviteTemplate, map[string]string{
		"SupplierName": supplierName,
		"AgencyName":   agencyName,
		"RfqTitle":     rfqTitle,
		"Deadline":     deadline.Format("2 January 2006 15:04 MST"),
	})
}

func (c *Client) SendQuotationSubmittedEmail(ctx context.Context, to, supplierName, rfqTitle string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendQuotationSubmittedEmail")
	defer span.End()

	return c.send(ctx, to, fmt.Sprintf("Quotation received for %s", rfqTitle), quotationSubmittedTemplate, map[string]string{
		"SupplierName": supplierName,
		"RfqTitle":     rfqTitle,
	})
}

func (c *Client) SendWaitlistWelcomeEmail(ctx context.Context, to, fullName string) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendWaitlistWelcomeEmail")
	defer span.End()

	return c.send(ctx, to, "You're on the Quote Portal waitlist", waitlistWelcomeTemplate, map[string]string{
		"FullName": fullName,
	})
}

func (c *Client) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	htmlBody := body.String()

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &c.from,
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: &subject},
				Body: &sestypes.Body{
					Html: &sestypes.Content{Data: &htmlBody},
				},
			},
		},
	}

	if c.replyTo != "" {
		input.ReplyToAddresses = []string{c.replyTo}
	}

	if _, err := c.ses.SendEmail(ctx, input); err != nil {
		c.logger.Errorf("failed to send email to %s: %v", to, err)
		return types.NewUpstreamError("failed to send email", err)
	}

	return nil
}

func roleLabel(role string) string {
	switch types.Role(role) {
	case types.RoleAgencyAdmin, types.RoleSupplierAdmin:
		return "team admin"
	default:
		return "team member"
	}
}
