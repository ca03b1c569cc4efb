// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

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
	token := strings.Repeat("cd", 32)

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
			name:   "create invite",
			method: http.MethodPost,
			url:    "/api/v0/team/invites",
			body:   `{"email": "new.member@bright.events", "role": "agency_member"}`,
			span:   "team.API.createInvite",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					CreateInvite(gomock.Any(), &CreateInviteInput{
						Email: "new.member@bright.events",
						Role:  types.RoleAgencyMember,
					}).
					Return(&types.OrgInvite{ID: "org-invite-1", Email: "new.member@bright.events"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create invite with unknown role",
			method:         http.MethodPost,
			url:            "/api/v0/team/invites",
			body:           `{"email": "new.member@bright.events", "role": "owner"}`,
			span:           "team.API.createInvite",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create invite with invalid email",
			method:         http.MethodPost,
			url:            "/api/v0/team/invites",
			body:           `{"email": "not-an-email", "role": "agency_member"}`,
			span:           "team.API.createInvite",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "accept invite",
			method: http.MethodPost,
			url:    "/api/v0/team/invites/accept",
			body:   `{"token": "` + token + `"}`,
			span:   "team.API.acceptInvite",
			setupMocks: func(mockService *MockServiceInterface) {
				agencyID := "agency-1"
				mockService.EXPECT().
					AcceptInvite(gomock.Any(), token).
					Return(&types.Profile{UserID: "new-user", Role: types.RoleAgencyMember, AgencyID: &agencyID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "accept expired invite",
			method: http.MethodPost,
			url:    "/api/v0/team/invites/accept",
			body:   `{"token": "` + token + `"}`,
			span:   "team.API.acceptInvite",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					AcceptInvite(gomock.Any(), token).
					Return(nil, types.NewConflictError("Invitation has expired"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "accept with malformed token",
			method:         http.MethodPost,
			url:            "/api/v0/team/invites/accept",
			body:           `{"token": "short"}`,
			span:           "team.API.acceptInvite",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list invites",
			method: http.MethodGet,
			url:    "/api/v0/team/invites",
			span:   "team.API.listInvites",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListInvites(gomock.Any()).
					Return([]*types.OrgInvite{{ID: "org-invite-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "revoke invite",
			method: http.MethodDelete,
			url:    "/api/v0/team/invites/org-invite-1",
			span:   "team.API.deleteInvite",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					DeleteInvite(gomock.Any(), "org-invite-1").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list members denied outside the org",
			method: http.MethodGet,
			url:    "/api/v0/team/members",
			span:   "team.API.listMembers",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListMembers(gomock.Any()).
					Return(nil, types.NewPermissionDeniedError("user is not part of an organization"))
			},
			expectedStatus: http.StatusForbidden,
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
