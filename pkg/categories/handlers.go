// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package categories

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

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
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
	mux.Get("/api/v0/categories", a.list)
	mux.Get("/api/v0/categories/search", a.search)
	mux.Get("/api/v0/categories/{id}", a.get)
	mux.Post("/api/v0/categories", a.create)
	mux.Patch("/api/v0/categories/{id}", a.update)
	mux.Delete("/api/v0/categories/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.list")
	defer span.End()

	categories, err := a.service.ListCategories(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, categories)
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.search")
	defer span.End()

	name := r.URL.Query().Get("q")
	if name == "" {
		httptypes.JSONErrorMessage(w, types.KindValidation, "query parameter q is required")
		return
	}

	categories, err := a.service.SearchCategories(ctx, name)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, categories)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.get")
	defer span.End()

	category, err := a.service.GetCategory(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, category)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.create")
	defer span.End()

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	category, err := a.service.CreateCategory(ctx, req.Name)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, category)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.update")
	defer span.End()

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	category, err := a.service.UpdateCategory(ctx, chi.URLParam(r, "id"), req.Name)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, category)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "categories.API.delete")
	defer span.End()

	if err := a.service.DeleteCategory(ctx, chi.URLParam(r, "id")); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}
