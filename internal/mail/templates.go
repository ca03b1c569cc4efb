// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"html/template"
)

var orgInviteTemplate = template.Must(template.New("org_invite").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>You have been invited to join {{.OrgName}}</h2>
  <p>You have been invited to join <strong>{{.OrgName}}</strong> on Quote Portal as a {{.RoleLabel}}.</p>
  <p><a href="{{.InviteURL}}" style="background: #1a73e8; color: #fff; padding: 10px 18px; text-decoration: none; border-radius: 4px;">Accept invitation</a></p>
  <p>This invitation expires on {{.ExpiresAt}}.</p>
  <p>If you were not expecting this invitation you can ignore this email.</p>
</body>
</html>`))

var rfqInviteTemplate = template.Must(template.New("rfq_invite").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>New request for quotation</h2>
  <p>Hi {{.SupplierName}},</p>
  <p><strong>{{.AgencyName}}</strong> has invited you to quote on <strong>{{.RfqTitle}}</strong>.</p>
  <p>Quotations are due by <strong>{{.Deadline}}</strong>.</p>
  <p>Sign in to Quote Portal to view the full brief and submit your quotation.</p>
</body>
</html>`))

var quotationSubmittedTemplate = template.Must(template.New("quotation_submitted").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Quotation received</h2>
  <p><strong>{{.SupplierName}}</strong> has submitted a quotation for <strong>{{.RfqTitle}}</strong>.</p>
  <p>Sign in to Quote Portal to review it.</p>
</body>
</html>`))

var waitlistWelcomeTemplate = template.Must(template.New("waitlist_welcome").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>You're on the list</h2>
  <p>Hi {{.FullName}},</p>
  <p>Thanks for joining the Quote Portal waitlist. We'll let you know as soon as your spot opens up.</p>
</body>
</html>`))
