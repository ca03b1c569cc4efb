// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package upload validates incoming files and derives their storage keys.
package upload

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/quoteportal/rfq-service/internal/types"
)

const (
	MaxImageSize    = 10 << 20 // 10 MiB
	MaxDocumentSize = 20 << 20 // 20 MiB
)

// Kind selects the validation rules and storage folder for an upload.
type Kind string

const (
	KindImage         Kind = "image"
	KindRfqAttachment Kind = "rfq-attachment"
	KindQuotation     Kind = "quotation"
)

type rules struct {
	folder    string
	maxSize   int64
	mimeTypes map[string]bool
}

var kindRules = map[Kind]rules{
	KindImage: {
		folder:  "gallery",
		maxSize: MaxImageSize,
		mimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
			"image/webp": true,
		},
	},
	KindRfqAttachment: {
		folder:  "rfq-attachments",
		maxSize: MaxDocumentSize,
		mimeTypes: map[string]bool{
			"application/pdf":    true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
			"image/jpeg": true,
			"image/jpg":  true,
			"image/png":  true,
		},
	},
	KindQuotation: {
		folder:  "quotations",
		maxSize: MaxDocumentSize,
		mimeTypes: map[string]bool{
			"application/pdf": true,
		},
	},
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Validate checks the file against the kind's size and MIME allow-list.
func Validate(kind Kind, mimeType string, size int64) error {
	r, ok := kindRules[kind]
	if !ok {
		return types.NewValidationError(fmt.Sprintf("unknown upload kind %q", kind))
	}

	if size <= 0 {
		return types.NewValidationError("file is empty")
	}
	if size > r.maxSize {
		return types.NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", r.maxSize>>20))
	}

	if !r.mimeTypes[strings.ToLower(mimeType)] {
		return types.NewValidationError(fmt.Sprintf("file type %q is not allowed", mimeType))
	}

	return nil
}

// SanitizeFilename strips characters that are unsafe in object keys.
func SanitizeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// Key builds the object key <folder>/<scope>/<timestamp>_<sanitized-name>.
// The scope is the owning entity, e.g. an organization or RFQ ID.
func Key(kind Kind, scope, filename string) string {
	r := kindRules[kind]
	return fmt.Sprintf("%s/%s/%d_%s", r.folder, scope, time.Now().UnixMilli(), SanitizeFilename(filename))
}
