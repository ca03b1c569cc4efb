// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/quoteportal/rfq-service/internal/types"
)

func TestAPI_GetMe(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetMe(gomock.Any()).
					Return(&Me{Profile: &types.Profile{UserID: "user-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unauthenticated",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetMe(gomock.Any()).
					Return(nil, types.NewPermissionDeniedError("authentication required"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "no profile yet",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetMe(gomock.Any()).
					Return(nil, types.NewNotFoundError("profile not found"))
			},
			expectedStatus: http.StatusNotFound,
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
				Start(gomock.Any(), "profiles.API.getMe").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAPI_UpdateMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), "profiles.API.updateMe").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockService.EXPECT().
		UpdateMe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&types.Profile{UserID: "user-1", FirstName: "Jane"}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/me", strings.NewReader(`{"first_name": "Jane"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
