// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package waitlist

import (
	"encoding/json"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/quoteportal/rfq-service/internal/http/types"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/internal/types"
)

type joinRequest struct {
	FullName    string   `json:"full_name" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	CompanyName string   `json:"company_name" validate:"max=200"`
	Role        string   `json:"role" validate:"required,oneof=agency supplier other"`
	Interests   []string `json:"interests" validate:"max=20"`
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
	mux.Post("/api/v0/waitlist", a.join)
	mux.Get("/api/v0/waitlist", a.checkEmail)
	mux.Get("/api/v0/waitlist/entries", a.listEntries)
}

func (a *API) join(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "waitlist.API.join")
	defer span.End()

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	entry, err := a.service.Join(ctx, &types.WaitlistEntry{
		FullName:    req.FullName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Interests:   req.Interests,
	})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, entry)
}

func (a *API) checkEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "waitlist.API.checkEmail")
	defer span.End()

	email := r.URL.Query().Get("email")
	if email == "" {
		httptypes.JSONErrorMessage(w, types.KindValidation, "query parameter email is required")
		return
	}

	exists, err := a.service.CheckEmail(ctx, email)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (a *API) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "waitlist.API.listEntries")
	defer span.End()

	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	entries, err := a.service.ListEntries(ctx, storage.Pagination{Page: page, Size: size})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, entries)
}
