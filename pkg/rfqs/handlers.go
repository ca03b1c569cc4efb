// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rfqs

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/quoteportal/rfq-service/internal/http/types"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

type createRfqRequest struct {
	Title       string            `json:"title" validate:"required,max=300"`
	ClientName  string            `json:"client_name" validate:"max=200"`
	EventDates  *types.EventDates `json:"event_dates"`
	Venue       string            `json:"venue" validate:"max=300"`
	Scope       string            `json:"scope" validate:"required,max=10000"`
	Attachments []string          `json:"attachments" validate:"max=20,dive,url"`
	DeadlineAt  time.Time         `json:"deadline_at" validate:"required"`
}

type updateRfqRequest struct {
	Title      *string           `json:"title" validate:"omitempty,max=300"`
	ClientName *string           `json:"client_name" validate:"omitempty,max=200"`
	EventDates *types.EventDates `json:"event_dates"`
	Venue      *string           `json:"venue" validate:"omitempty,max=300"`
	Scope      *string           `json:"scope" validate:"omitempty,max=10000"`
	DeadlineAt *time.Time        `json:"deadline_at"`
	Status     *types.RfqStatus  `json:"status" validate:"omitempty,oneof=draft sent closed awarded not_awarded"`
}

type sendRfqRequest struct {
	SupplierIDs []string `json:"supplier_ids" validate:"required,min=1,max=100"`
}

type attachmentsRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,max=20,dive,url"`
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
	mux.Post("/api/v0/rfqs", a.createRfq)
	mux.Get("/api/v0/rfqs", a.listRfqs)
	mux.Get("/api/v0/rfqs/{id}", a.getRfq)
	mux.Patch("/api/v0/rfqs/{id}", a.updateRfq)
	mux.Delete("/api/v0/rfqs/{id}", a.deleteRfq)
	mux.Post("/api/v0/rfqs/{id}/send", a.sendRfq)
	mux.Put("/api/v0/rfqs/{id}/attachments", a.appendAttachments)
	mux.Get("/api/v0/rfqs/{id}/invites", a.listInvites)
	mux.Get("/api/v0/rfqs/{id}/quotations", a.listQuotations)
}

func (a *API) createRfq(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.createRfq")
	defer span.End()

	var req createRfqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	rfq, err := a.service.CreateRfq(ctx, &CreateRfqInput{
		Title:       req.Title,
		ClientName:  req.ClientName,
		EventDates:  req.EventDates,
		Venue:       req.Venue,
		Scope:       req.Scope,
		Attachments: req.Attachments,
		DeadlineAt:  req.DeadlineAt,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, rfq)
}

func (a *API) listRfqs(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.listRfqs")
	defer span.End()

	rfqs, err := a.service.ListRfqs(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, rfqs)
}

func (a *API) getRfq(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.getRfq")
	defer span.End()

	rfq, err := a.service.GetRfq(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, rfq)
}

func (a *API) updateRfq(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.updateRfq")
	defer span.End()

	var req updateRfqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	rfq, err := a.service.UpdateRfq(ctx, chi.URLParam(r, "id"), &UpdateRfqInput{
		Title:      req.Title,
		ClientName: req.ClientName,
		EventDates: req.EventDates,
		Venue:      req.Venue,
		Scope:      req.Scope,
		DeadlineAt: req.DeadlineAt,
		Status:     req.Status,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, rfq)
}

func (a *API) deleteRfq(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.deleteRfq")
	defer span.End()

	if err := a.service.DeleteRfq(ctx, chi.URLParam(r, "id")); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) sendRfq(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.sendRfq")
	defer span.End()

	var req sendRfqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	rfq, err := a.service.SendRfq(ctx, chi.URLParam(r, "id"), req.SupplierIDs)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, rfq)
}

func (a *API) appendAttachments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.appendAttachments")
	defer span.End()

	var req attachmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	rfq, err := a.service.AppendAttachments(ctx, chi.URLParam(r, "id"), req.URLs)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, rfq)
}

func (a *API) listInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.listInvites")
	defer span.End()

	invites, err := a.service.ListInvites(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, invites)
}

func (a *API) listQuotations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "rfqs.API.listQuotations")
	defer span.End()

	quotations, err := a.service.ListQuotations(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, quotations)
}
