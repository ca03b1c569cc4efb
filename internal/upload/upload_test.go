// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package upload

import (
	"strings"
	"testing"

	"github.com/quoteportal/rfq-service/internal/types"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		mimeType string
		size     int64
		wantErr  bool
	}{
		{"png within limit", KindImage, "image/png", 1 << 20, false},
		{"webp allowed", KindImage, "image/webp", 500, false},
		{"mime case insensitive", KindImage, "IMAGE/JPEG", 500, false},
		{"image too large", KindImage, "image/png", MaxImageSize + 1, true},
		{"empty file", KindImage, "image/png", 0, true},
		{"pdf not an image", KindImage, "application/pdf", 500, true},
		{"svg rejected", KindImage, "image/svg+xml", 500, true},

		{"pdf attachment", KindRfqAttachment, "application/pdf", 5 << 20, false},
		{"docx attachment", KindRfqAttachment, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 500, false},
		{"attachment too large", KindRfqAttachment, "application/pdf", MaxDocumentSize + 1, true},

		{"quotation pdf", KindQuotation, "application/pdf", 500, false},
		{"quotation docx rejected", KindQuotation, "application/msword", 500, true},

		{"unknown kind", Kind("archive"), "application/zip", 500, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.kind, tc.mimeType, tc.size)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if types.KindOf(err) != types.KindValidation {
					t.Errorf("expected validation error, got %s", types.KindOf(err))
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"brochure.pdf", "brochure.pdf"},
		{"stage plan (final).pdf", "stage_plan__final_.pdf"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"café menu.png", "caf__menu.png"},
	}

	for _, tc := range testCases {
		if got := SanitizeFilename(tc.in); got != tc.expected {
			t.Errorf("SanitizeFilename(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestKey(t *testing.T) {
	key := Key(KindQuotation, "invite-1", "offer v2.pdf")

	if !strings.HasPrefix(key, "quotations/invite-1/") {
		t.Errorf("unexpected key prefix: %q", key)
	}
	if !strings.HasSuffix(key, "_offer_v2.pdf") {
		t.Errorf("unexpected key suffix: %q", key)
	}
}
