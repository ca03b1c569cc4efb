// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/quoteportal/rfq-service/internal/http/types"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/internal/upload"
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
			name:   "create image",
			method: http.MethodPost,
			url:    "/api/v0/images",
			body: `{
				"organization_type": "agency",
				"organization_id": "agency-1",
				"file_name": "venue.jpg",
				"file_path": "gallery/agency-1/1_venue.jpg",
				"file_url": "https://cdn.test/gallery/agency-1/1_venue.jpg",
				"file_size": 1024,
				"mime_type": "image/jpeg"
			}`,
			span: "gallery.API.createImage",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					CreateImage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input *CreateImageInput) (*types.Image, error) {
						if input.OrgType != types.OrgTypeAgency {
							t.Errorf("expected agency org type, got %q", input.OrgType)
						}
						return &types.Image{ID: "img-1", IsFeatured: true}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create image with unknown org type",
			method:         http.MethodPost,
			url:            "/api/v0/images",
			body:           `{"organization_type": "charity", "organization_id": "x", "file_name": "a.jpg", "file_path": "p", "file_url": "https://cdn.test/a.jpg", "file_size": 1, "mime_type": "image/jpeg"}`,
			span:           "gallery.API.createImage",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list organization images",
			method: http.MethodGet,
			url:    "/api/v0/organizations/agency/agency-1/images",
			span:   "gallery.API.listImages",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					ListImages(gomock.Any(), types.OrgTypeAgency, "agency-1").
					Return([]*types.Image{{ID: "img-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list images with invalid org type",
			method:         http.MethodGet,
			url:            "/api/v0/organizations/charity/agency-1/images",
			span:           "gallery.API.listImages",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get featured image",
			method: http.MethodGet,
			url:    "/api/v0/organizations/supplier/supplier-1/images/featured",
			span:   "gallery.API.getFeaturedImage",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					GetFeaturedImage(gomock.Any(), types.OrgTypeSupplier, "supplier-1").
					Return(&types.Image{ID: "img-1", IsFeatured: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update image",
			method: http.MethodPatch,
			url:    "/api/v0/images/img-1",
			body:   `{"alt_text": "Main hall"}`,
			span:   "gallery.API.updateImage",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					UpdateImage(gomock.Any(), "img-1", gomock.Any()).
					Return(&types.Image{ID: "img-1", AltText: "Main hall"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete image denied",
			method: http.MethodDelete,
			url:    "/api/v0/images/img-1",
			span:   "gallery.API.deleteImage",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					DeleteImage(gomock.Any(), "img-1").
					Return(types.NewPermissionDeniedError("not allowed to manage this gallery"))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "feature image",
			method: http.MethodPost,
			url:    "/api/v0/images/img-2/feature",
			span:   "gallery.API.setFeaturedImage",
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().
					SetFeaturedImage(gomock.Any(), "img-2").
					Return(&types.Image{ID: "img-2", IsFeatured: true}, nil)
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

func TestAPI_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), "gallery.API.uploadImage").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockService.EXPECT().
		UploadFile(gomock.Any(), upload.KindImage, "venue.jpg", "image/jpeg", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ upload.Kind, _, _ string, _ int64, body io.Reader) (*UploadResult, error) {
			content, err := io.ReadAll(body)
			if err != nil {
				return nil, err
			}
			if string(content) != "fake image bytes" {
				t.Errorf("unexpected upload content %q", content)
			}
			return &UploadResult{
				Key: "gallery/agency-1/1_venue.jpg",
				URL: "https://cdn.test/gallery/agency-1/1_venue.jpg",
			}, nil
		})

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="venue.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("failed to write multipart body: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v0/uploads/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestAPI_UploadMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().
		Start(gomock.Any(), "gallery.API.uploadQuotation").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mux := chi.NewMux()
	NewAPI(mockService, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(mux)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("note", "no file attached")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v0/uploads/quotation", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}
}
