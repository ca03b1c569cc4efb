// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqinvites

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
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=invited opened submitted closed"`
}

type submitQuotationRequest struct {
	PdfURL string `json:"pdf_url" validate:"required,url"`
	Notes  string `json:"notes" validate:"max=5000"`
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
	mux.Get("/api/v0/rfq-invites", a.listMyInvites)
	mux.Get("/api/v0/rfq-invites/{id}", a.getInvite)
	mux.Post("/api/v0/rfq-invites/{id}/status", a.updateStatus)
	mux.Post("/api/v0/rfq-invites/{id}/quotations", a.submitQuotation)
	mux.Get("/api/v0/rfq-invites/{id}/quotations", a.listQuotations)
	mux.Get("/api/v0/quotations/{id}/download", a.downloadQuotation)
}

func (a *API) listMyInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.listMyInvites")
	defer span.End()

	invites, err := a.service.ListMyInvites(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, invites)
}

func (a *API) getInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.getInvite")
	defer span.End()

	detail, err := a.service.GetInvite(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, detail)
}

func (a *API) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.updateStatus")
	defer span.End()

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	invite, err := a.service.UpdateStatus(ctx, chi.URLParam(r, "id"), types.InviteStatus(req.Status))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, invite)
}

func (a *API) submitQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.submitQuotation")
	defer span.End()

	var req submitQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	quotation, err := a.service.SubmitQuotation(ctx, chi.URLParam(r, "id"), &SubmitQuotationInput{
		PdfURL: req.PdfURL,
		Notes:  req.Notes,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, quotation)
}

func (a *API) listQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.listQuotations")
	defer span.End()

	quotations, err := a.service.ListQuotations(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, quotations)
}

func (a *API) downloadQuotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqinvites.API.downloadQuotation")
	defer span.End()

	url, err := a.service.GetQuotationDownload(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
