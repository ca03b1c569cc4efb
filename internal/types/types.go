// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrgType distinguishes the two organization tables.
type OrgType string

const (
	OrgTypeAgency   OrgType = "agency"
	OrgTypeSupplier OrgType = "supplier"
)

func (t OrgType) Valid() bool {
	return t == OrgTypeAgency || t == OrgTypeSupplier
}

// OrgStatus is the lifecycle status of an organization.
type OrgStatus string

const (
	OrgStatusActive   OrgStatus = "active"
	OrgStatusInactive OrgStatus = "inactive"
	OrgStatusPending  OrgStatus = "pending"
)

// Role is the application role carried by a profile.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleAgencyAdmin    Role = "agency_admin"
	RoleAgencyMember   Role = "agency_member"
	RoleSupplierAdmin  Role = "supplier_admin"
	RoleSupplierMember Role = "supplier_member"
)

func (r Role) IsAgency() bool {
	return r == RoleAgencyAdmin || r == RoleAgencyMember
}

func (r Role) IsSupplier() bool {
	return r == RoleSupplierAdmin || r == RoleSupplierMember
}

func (r Role) IsOrgAdmin() bool {
	return r == RoleAgencyAdmin || r == RoleSupplierAdmin
}

// RfqStatus is the lifecycle status of an RFQ.
type RfqStatus string

const (
	RfqStatusDraft      RfqStatus = "draft"
	RfqStatusSent       RfqStatus = "sent"
	RfqStatusClosed     RfqStatus = "closed"
	RfqStatusAwarded    RfqStatus = "awarded"
	RfqStatusNotAwarded RfqStatus = "not_awarded"
)

func (s RfqStatus) Valid() bool {
	switch s {
	case RfqStatusDraft, RfqStatusSent, RfqStatusClosed, RfqStatusAwarded, RfqStatusNotAwarded:
		return true
	}
	return false
}

// Terminal reports whether the status ends the tender. A terminal RFQ
// accepts no further supplier activity.
func (s RfqStatus) Terminal() bool {
	switch s {
	case RfqStatusClosed, RfqStatusAwarded, RfqStatusNotAwarded:
		return true
	}
	return false
}

// InviteStatus is the per-supplier RFQ invite state. It only ever advances:
// invited -> opened -> submitted, with closed reachable from any state.
type InviteStatus string

const (
	InviteStatusInvited   InviteStatus = "invited"
	InviteStatusOpened    InviteStatus = "opened"
	InviteStatusSubmitted InviteStatus = "submitted"
	InviteStatusClosed    InviteStatus = "closed"
)

var inviteStatusRank = map[InviteStatus]int{
	InviteStatusInvited:   0,
	InviteStatusOpened:    1,
	InviteStatusSubmitted: 2,
	InviteStatusClosed:    3,
}

func (s InviteStatus) Valid() bool {
	_, ok := inviteStatusRank[s]
	return ok
}

// CanTransitionTo reports whether the status may advance to next.
// Re-applying the current status is an idempotent no-op and is allowed.
func (s InviteStatus) CanTransitionTo(next InviteStatus) bool {
	cur, ok := inviteStatusRank[s]
	if !ok {
		return false
	}
	n, ok := inviteStatusRank[next]
	if !ok {
		return false
	}
	if s == InviteStatusClosed {
		return next == InviteStatusClosed
	}
	return n >= cur
}

// QuotationStatus marks whether a quotation row is the live version.
type QuotationStatus string

const (
	QuotationStatusSubmitted QuotationStatus = "submitted"
	QuotationStatusReplaced  QuotationStatus = "replaced"
)

// Location is an embedded JSON column.
type Location struct {
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

func (l *Location) Scan(src any) error { return scanJSON(src, l) }

func (l Location) Value() (driver.Value, error) { return json.Marshal(l) }

// EventDates is an embedded JSON column holding an event date range.
type EventDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (d *EventDates) Scan(src any) error { return scanJSON(src, d) }

func (d EventDates) Value() (driver.Value, error) { return json.Marshal(d) }

// StringList is a JSON array column (category IDs, attachment URLs).
type StringList []string

func (s *StringList) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	return scanJSON(src, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

type Agency struct {
	ID                 string     `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	ContactName        string     `db:"contact_name" json:"contact_name"`
	Email              string     `db:"email" json:"email"`
	Phone              string     `db:"phone" json:"phone,omitempty"`
	LogoURL            string     `db:"logo_url" json:"logo_url,omitempty"`
	Website            string     `db:"website" json:"website,omitempty"`
	Location           *Location  `db:"location" json:"location,omitempty"`
	InterestCategories StringList `db:"interest_categories" json:"interest_categories"`
	About              string     `db:"about" json:"about,omitempty"`
	IsPublished        bool       `db:"is_published" json:"is_published"`
	Status             OrgStatus  `db:"status" json:"status"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type Supplier struct {
	ID                string     `db:"id" json:"id"`
	Name              string     `db:"name" json:"name"`
	ContactName       string     `db:"contact_name" json:"contact_name"`
	Email             string     `db:"email" json:"email"`
	Phone             string     `db:"phone" json:"phone,omitempty"`
	LogoURL           string     `db:"logo_url" json:"logo_url,omitempty"`
	BrochureURL       string     `db:"brochure_url" json:"brochure_url,omitempty"`
	Location          *Location  `db:"location" json:"location,omitempty"`
	ServiceCategories StringList `db:"service_categories" json:"service_categories"`
	ServicesText      string     `db:"services_text" json:"services_text,omitempty"`
	IsPublished       bool       `db:"is_published" json:"is_published"`
	Status            OrgStatus  `db:"status" json:"status"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// Profile links an external identity to at most one organization.
type Profile struct {
	UserID     string    `db:"user_id" json:"user_id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	Email      string    `db:"email" json:"email"`
	Role       Role      `db:"role" json:"role"`
	AgencyID   *string   `db:"agency_id" json:"agency_id,omitempty"`
	SupplierID *string   `db:"supplier_id" json:"supplier_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// InOrganization reports whether the profile already belongs to an org.
func (p *Profile) InOrganization() bool {
	return p.AgencyID != nil || p.SupplierID != nil
}

type Category struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Image struct {
	ID               string    `db:"id" json:"id"`
	OrganizationID   string    `db:"organization_id" json:"organization_id"`
	OrganizationType OrgType   `db:"organization_type" json:"organization_type"`
	FileName         string    `db:"file_name" json:"file_name"`
	FilePath         string    `db:"file_path" json:"file_path"`
	FileURL          string    `db:"file_url" json:"file_url"`
	FileSize         int64     `db:"file_size" json:"file_size"`
	MimeType         string    `db:"mime_type" json:"mime_type"`
	AltText          string    `db:"alt_text" json:"alt_text,omitempty"`
	Caption          string    `db:"caption" json:"caption,omitempty"`
	IsFeatured       bool      `db:"is_featured" json:"is_featured"`
	SortOrder        int       `db:"sort_order" json:"sort_order"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type Rfq struct {
	ID              string      `db:"id" json:"id"`
	AgencyID        string      `db:"agency_id" json:"agency_id"`
	CreatedByUserID string      `db:"created_by_user_id" json:"created_by_user_id"`
	Title           string      `db:"title" json:"title"`
	ClientName      string      `db:"client_name" json:"client_name"`
	EventDates      *EventDates `db:"event_dates" json:"event_dates,omitempty"`
	Venue           string      `db:"venue" json:"venue,omitempty"`
	Scope           string      `db:"scope" json:"scope"`
	AttachmentsURL  StringList  `db:"attachments_url" json:"attachments_url"`
	DeadlineAt      time.Time   `db:"deadline_at" json:"deadline_at"`
	Status          RfqStatus   `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updated_at"`
}

type RfqInvite struct {
	ID             string       `db:"id" json:"id"`
	RfqID          string       `db:"rfq_id" json:"rfq_id"`
	SupplierID     string       `db:"supplier_id" json:"supplier_id"`
	InviteStatus   InviteStatus `db:"invite_status" json:"invite_status"`
	LastActivityAt time.Time    `db:"last_activity_at" json:"last_activity_at"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

type Quotation struct {
	ID          string          `db:"id" json:"id"`
	RfqInviteID string          `db:"rfq_invite_id" json:"rfq_invite_id"`
	SupplierID  string          `db:"supplier_id" json:"supplier_id"`
	PdfURL      string          `db:"pdf_url" json:"pdf_url"`
	Notes       string          `db:"notes" json:"notes,omitempty"`
	SubmittedAt time.Time       `db:"submitted_at" json:"submitted_at"`
	Status      QuotationStatus `db:"status" json:"status"`
	Version     int             `db:"version" json:"version"`
}

// OrgInvite is a pending team-membership invitation, keyed by hashed token.
type OrgInvite struct {
	ID         string     `db:"id" json:"id"`
	OrgType    OrgType    `db:"org_type" json:"org_type"`
	OrgID      string     `db:"org_id" json:"org_id"`
	Email      string     `db:"email" json:"email"`
	Role       Role       `db:"role" json:"role"`
	TokenHash  string     `db:"token_hash" json:"-"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	AcceptedAt *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

type WaitlistEntry struct {
	ID          string     `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	Email       string     `db:"email" json:"email"`
	CompanyName string     `db:"company_name" json:"company_name,omitempty"`
	Role        string     `db:"role" json:"role"`
	Interests   StringList `db:"interests" json:"interests,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
