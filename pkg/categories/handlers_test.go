// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package categories

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
			name:   "list categories",
			method: http.MethodGet,
			url:    "/api/v0/categories",
			span:   "categories.API.list",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListCategories(gomock.Any()).
					Return([]*types.Category{{ID: "c-1", Name: "Catering"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "search categories",
			method: http.MethodGet,
			url:    "/api/v0/categories/search?q=cat",
			span:   "categories.API.search",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					SearchCategories(gomock.Any(), "cat").
					Return([]*types.Category{{ID: "c-1", Name: "Catering"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "search without query",
			method:         http.MethodGet,
			url:            "/api/v0/categories/search",
			span:           "categories.API.search",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get category not found",
			method: http.MethodGet,
			url:    "/api/v0/categories/c-404",
			span:   "categories.API.get",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetCategory(gomock.Any(), "c-404").
					Return(nil, types.NewNotFoundError("category not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "create category",
			method: http.MethodPost,
			url:    "/api/v0/categories",
			body:   `{"name": "Venues"}`,
			span:   "categories.API.create",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					CreateCategory(gomock.Any(), "Venues").
					Return(&types.Category{ID: "c-2", Name: "Venues"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create category missing name",
			method:         http.MethodPost,
			url:            "/api/v0/categories",
			body:           `{}`,
			span:           "categories.API.create",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create category denied",
			method: http.MethodPost,
			url:    "/api/v0/categories",
			body:   `{"name": "Venues"}`,
			span:   "categories.API.create",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					CreateCategory(gomock.Any(), "Venues").
					Return(nil, types.NewPermissionDeniedError("only administrators can manage categories"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "delete category",
			method: http.MethodDelete,
			url:    "/api/v0/categories/c-1",
			span:   "categories.API.delete",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().DeleteCategory(gomock.Any(), "c-1").Return(nil)
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

			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tc.method, tc.url, body)
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
