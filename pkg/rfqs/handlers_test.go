// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/quoteportal/rfq-service/internal/http/types"
	"github.com/quoteportal/rfq-service/internal/types"
)

func TestAPI_Endpoints(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		url            string
		body           string
		span           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "create draft",
			method: http.MethodPost,
			url:    "/api/v0/rfqs",
			body:   `{"title": "Spring gala production", "scope": "Full AV production.", "deadline_at": "2026-10-01T00:00:00Z"}`,
			span:   "rfqs.API.createRfq",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					CreateRfq(gomock.Any(), gomock.Any()).
					Return(&types.Rfq{ID: "rfq-1", Status: types.RfqStatusDraft}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create draft missing scope",
			method:         http.MethodPost,
			url:            "/api/v0/rfqs",
			body:           `{"title": "Spring gala production", "deadline_at": "2026-10-01T00:00:00Z"}`,
			span:           "rfqs.API.createRfq",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list rfqs requires agency",
			method: http.MethodGet,
			url:    "/api/v0/rfqs",
			span:   "rfqs.API.listRfqs",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListRfqs(gomock.Any()).
					Return(nil, types.NewPermissionDeniedError("user is not part of an agency"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "get rfq",
			method: http.MethodGet,
			url:    "/api/v0/rfqs/rfq-1",
			span:   "rfqs.API.getRfq",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetRfq(gomock.Any(), "rfq-1").
					Return(&types.Rfq{ID: "rfq-1", Status: types.RfqStatusSent}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "send rfq",
			method: http.MethodPost,
			url:    "/api/v0/rfqs/rfq-1/send",
			body:   `{"supplier_ids": ["supplier-1", "supplier-2"]}`,
			span:   "rfqs.API.sendRfq",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					SendRfq(gomock.Any(), "rfq-1", []string{"supplier-1", "supplier-2"}).
					Return(&types.Rfq{ID: "rfq-1", Status: types.RfqStatusSent}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "send rfq without suppliers",
			method:         http.MethodPost,
			url:            "/api/v0/rfqs/rfq-1/send",
			body:           `{"supplier_ids": []}`,
			span:           "rfqs.API.sendRfq",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "send non-draft rfq",
			method: http.MethodPost,
			url:    "/api/v0/rfqs/rfq-1/send",
			body:   `{"supplier_ids": ["supplier-1"]}`,
			span:   "rfqs.API.sendRfq",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					SendRfq(gomock.Any(), "rfq-1", []string{"supplier-1"}).
					Return(nil, types.NewConflictError("Only draft RFQs can be sent"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "delete non-draft rfq",
			method: http.MethodDelete,
			url:    "/api/v0/rfqs/rfq-1",
			span:   "rfqs.API.deleteRfq",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					DeleteRfq(gomock.Any(), "rfq-1").
					Return(types.NewConflictError("Only draft RFQs can be deleted"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "append attachments",
			method: http.MethodPut,
			url:    "/api/v0/rfqs/rfq-1/attachments",
			body:   `{"urls": ["https://cdn.test/brief.pdf"]}`,
			span:   "rfqs.API.appendAttachments",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					AppendAttachments(gomock.Any(), "rfq-1", []string{"https://cdn.test/brief.pdf"}).
					Return(&types.Rfq{ID: "rfq-1", AttachmentsURL: types.StringList{"https://cdn.test/brief.pdf"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list invites",
			method: http.MethodGet,
			url:    "/api/v0/rfqs/rfq-1/invites",
			span:   "rfqs.API.listInvites",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListInvites(gomock.Any(), "rfq-1").
					Return([]*types.RfqInvite{{ID: "inv-1", InviteStatus: types.InviteStatusInvited}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list quotations",
			method: http.MethodGet,
			url:    "/api/v0/rfqs/rfq-1/quotations",
			span:   "rfqs.API.listQuotations",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListQuotations(gomock.Any(), "rfq-1").
					Return([]*types.Quotation{{ID: "q-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), tc.span).
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.setupMocks != nil {
				tc.setupMocks(mockService)
			}

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(tc.method, tc.url, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}

			var resp httptypes.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if rec.Code < 400 && resp.Status != httptypes.StatusSuccess {
				t.Errorf("expected success envelope, got %q", resp.Status)
			}
			if rec.Code >= 400 && resp.Status != httptypes.StatusError {
				t.Errorf("expected error envelope, got %q", resp.Status)
			}
		})
	}
}
