// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package waitlist

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

func TestAPI_Join(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: `{"full_name": "Jane Doe", "email": "jane@example.com", "role": "agency"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					Join(gomock.Any(), gomock.Any()).
					Return(&types.WaitlistEntry{ID: "wl-1", Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"full_name": `,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   string(types.KindValidation),
		},
		{
			name:           "missing email",
			body:           `{"full_name": "Jane Doe", "role": "agency"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   string(types.KindValidation),
		},
		{
			name:           "unknown role",
			body:           `{"full_name": "Jane Doe", "email": "jane@example.com", "role": "vendor"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   string(types.KindValidation),
		},
		{
			name: "duplicate email",
			body: `{"full_name": "Jane Doe", "email": "jane@example.com", "role": "agency"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					Join(gomock.Any(), gomock.Any()).
					Return(nil, types.NewConflictError("This email is already on our waitlist"))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   string(types.KindConflict),
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
				Start(gomock.Any(), "waitlist.API.join").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			if tc.setupMocks != nil {
				tc.setupMocks(mockService)
			}

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/waitlist", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}

			var resp httptypes.Response
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if tc.expectedCode != "" && resp.Code != tc.expectedCode {
				t.Errorf("expected code %q, got %q", tc.expectedCode, resp.Code)
			}
		})
	}
}
