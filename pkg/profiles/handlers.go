// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

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

type updateMeRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
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
	mux.Get("/api/v0/me", a.getMe)
	mux.Patch("/api/v0/me", a.updateMe)
	mux.Post("/api/v0/me/promote-admin", a.promoteAdmin)
}

func (a *API) getMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "profiles.API.getMe")
	defer span.End()

	me, err := a.service.GetMe(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, me)
}

func (a *API) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "profiles.API.updateMe")
	defer span.End()

	var req updateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	profile, err := a.service.UpdateMe(ctx, req.FirstName, req.LastName)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, profile)
}

func (a *API) promoteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "profiles.API.promoteAdmin")
	defer span.End()

	profile, err := a.service.PromoteAdmin(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, profile)
}
