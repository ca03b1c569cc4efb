// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/quoteportal/rfq-service/internal/http/types"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
	"github.com/quoteportal/rfq-service/internal/upload"
)

type createImageRequest struct {
	OrganizationType string `json:"organization_type" validate:"required,oneof=agency supplier"`
	OrganizationID   string `json:"organization_id" validate:"required"`
	FileName         string `json:"file_name" validate:"required,max=255"`
	FilePath         string `json:"file_path" validate:"required,max=1024"`
	FileURL          string `json:"file_url" validate:"required,url"`
	FileSize         int64  `json:"file_size" validate:"required,gt=0"`
	MimeType         string `json:"mime_type" validate:"required,max=100"`
	AltText          string `json:"alt_text" validate:"max=500"`
	Caption          string `json:"caption" validate:"max=1000"`
	IsFeatured       bool   `json:"is_featured"`
	SortOrder        int    `json:"sort_order" validate:"gte=0"`
}

type updateImageRequest struct {
	AltText   *string `json:"alt_text" validate:"omitempty,max=500"`
	Caption   *string `json:"caption" validate:"omitempty,max=1000"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/images", a.createImage)
	mux.Get("/api/v0/organizations/{type}/{id}/images", a.listImages)
	mux.Get("/api/v0/organizations/{type}/{id}/images/featured", a.getFeaturedImage)
	mux.Patch("/api/v0/images/{id}", a.updateImage)
	mux.Delete("/api/v0/images/{id}", a.deleteImage)
	mux.Post("/api/v0/images/{id}/feature", a.setFeaturedImage)

	mux.Post("/api/v0/uploads/image", a.uploadImage)
	mux.Post("/api/v0/uploads/rfq-attachment", a.uploadRfqAttachment)
	mux.Post("/api/v0/uploads/quotation", a.uploadQuotation)
}

func (a *API) createImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.createImage")
	defer span.End()

	var req createImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	img, err := a.service.CreateImage(ctx, &CreateImageInput{
		OrgType:    types.OrgType(req.OrganizationType),
		OrgID:      req.OrganizationID,
		FileName:   req.FileName,
		FilePath:   req.FilePath,
		FileURL:    req.FileURL,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		AltText:    req.AltText,
		Caption:    req.Caption,
		IsFeatured: req.IsFeatured,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, img)
}

func (a *API) listImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.listImages")
	defer span.End()

	orgType, ok := a.orgType(w, r)
	if !ok {
		return
	}

	images, err := a.service.ListImages(ctx, orgType, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, images)
}

func (a *API) getFeaturedImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.getFeaturedImage")
	defer span.End()

	orgType, ok := a.orgType(w, r)
	if !ok {
		return
	}

	img, err := a.service.GetFeaturedImage(ctx, orgType, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, img)
}

func (a *API) updateImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.updateImage")
	defer span.End()

	var req updateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	img, err := a.service.UpdateImage(ctx, chi.URLParam(r, "id"), &UpdateImageInput{
		AltText:   req.AltText,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, img)
}

func (a *API) deleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.deleteImage")
	defer span.End()

	if err := a.service.DeleteImage(ctx, chi.URLParam(r, "id")); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) setFeaturedImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "gallery.API.setFeaturedImage")
	defer span.End()

	img, err := a.service.SetFeaturedImage(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, img)
}

func (a *API) uploadImage(w http.ResponseWriter, r *http.Request) {
	a.upload(w, r, upload.KindImage, "gallery.API.uploadImage")
}

func (a *API) uploadRfqAttachment(w http.ResponseWriter, r *http.Request) {
	a.upload(w, r, upload.KindRfqAttachment, "gallery.API.uploadRfqAttachment")
}

func (a *API) uploadQuotation(w http.ResponseWriter, r *http.Request) {
	a.upload(w, r, upload.KindQuotation, "gallery.API.uploadQuotation")
}

func (a *API) upload(w http.ResponseWriter, r *http.Request, kind upload.Kind, spanName string) {
	ctx, span := a.tracer.Start(r.Context(), spanName)
	defer span.End()

	if err := r.ParseMultipartForm(upload.MaxDocumentSize); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "missing file field")
		return
	}
	defer file.Close()

	result, err := a.service.UploadFile(ctx, kind, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, result)
}

func (a *API) orgType(w http.ResponseWriter, r *http.Request) (types.OrgType, bool) {
	orgType := types.OrgType(chi.URLParam(r, "type"))
	if !orgType.Valid() {
		httptypes.JSONErrorMessage(w, types.KindValidation, "organization type must be agency or supplier")
		return "", false
	}
	return orgType, true
}
