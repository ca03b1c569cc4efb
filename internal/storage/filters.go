// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"encoding/json"
	"strings"
)

// Pagination selects a page of a listing. Zero values fall back to the
// first page and the default page size.
type Pagination struct {
	Page int64
	Size int64
}

// OrgFilter narrows agency and supplier listings.
type OrgFilter struct {
	// PublishedOnly restricts results to published, active organizations.
	PublishedOnly bool
	// Name is a case-insensitive substring match on the organization name.
	Name string
	// CategoryID matches organizations carrying the category in their
	// category list.
	CategoryID string

	Pagination
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

// jsonArray renders values as a JSON array literal for jsonb containment
// queries.
func jsonArray(values ...string) string {
	b, _ := json.Marshal(values)
	return string(b)
}
