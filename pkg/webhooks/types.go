// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "time"

// KratosIdentity is the payload Kratos posts from its after-registration
// hook.
type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EmailEventType enumerates the SES delivery notifications we accept.
type EmailEventType string

const (
	EmailEventBounce        EmailEventType = "Bounce"
	EmailEventDelivery      EmailEventType = "Delivery"
	EmailEventOpen          EmailEventType = "Open"
	EmailEventClick         EmailEventType = "Click"
	EmailEventSpamComplaint EmailEventType = "SpamComplaint"
)

func (t EmailEventType) Valid() bool {
	switch t {
	case EmailEventBounce, EmailEventDelivery, EmailEventOpen, EmailEventClick, EmailEventSpamComplaint:
		return true
	}
	return false
}

// EmailEvent is an inbound delivery event from the email provider. Events
// are logged, never persisted.
type EmailEvent struct {
	Type      EmailEventType `json:"eventType"`
	Recipient string         `json:"recipient"`
	MessageID string         `json:"messageId"`
	Timestamp time.Time      `json:"timestamp"`
}
