// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

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

type onboardRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	ContactName  string          `json:"contact_name" validate:"max=200"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone" validate:"max=50"`
	Website      string          `json:"website" validate:"omitempty,url"`
	LogoURL      string          `json:"logo_url" validate:"omitempty,url"`
	BrochureURL  string          `json:"brochure_url" validate:"omitempty,url"`
	Location     *types.Location `json:"location"`
	Categories   []string        `json:"categories" validate:"max=50"`
	About        string          `json:"about" validate:"max=5000"`
	ServicesText string          `json:"services_text" validate:"max=5000"`
}

type updateOrgRequest struct {
	Name         *string         `json:"name" validate:"omitempty,max=200"`
	ContactName  *string         `json:"contact_name" validate:"omitempty,max=200"`
	Phone        *string         `json:"phone" validate:"omitempty,max=50"`
	Website      *string         `json:"website" validate:"omitempty,url"`
	LogoURL      *string         `json:"logo_url" validate:"omitempty,url"`
	BrochureURL  *string         `json:"brochure_url" validate:"omitempty,url"`
	Location     *types.Location `json:"location"`
	Categories   *[]string       `json:"categories" validate:"omitempty,max=50"`
	About        *string         `json:"about" validate:"omitempty,max=5000"`
	ServicesText *string         `json:"services_text" validate:"omitempty,max=5000"`
}

// input flattens the request into an OrgInput and the list of changed columns.
func (r *updateOrgRequest) input(orgType types.OrgType) (*OrgInput, []string) {
	in := &OrgInput{}
	var paths []string

	if r.Name != nil {
		in.Name = *r.Name
		paths = append(paths, "name")
	}
	if r.ContactName != nil {
		in.ContactName = *r.ContactName
		paths = append(paths, "contact_name")
	}
	if r.Phone != nil {
		in.Phone = *r.Phone
		paths = append(paths, "phone")
	}
	if r.Website != nil {
		in.Website = *r.Website
		paths = append(paths, "website")
	}
	if r.LogoURL != nil {
		in.LogoURL = *r.LogoURL
		paths = append(paths, "logo_url")
	}
	if r.BrochureURL != nil {
		in.BrochureURL = *r.BrochureURL
		paths = append(paths, "brochure_url")
	}
	if r.Location != nil {
		in.Location = r.Location
		paths = append(paths, "location")
	}
	if r.Categories != nil {
		in.Categories = *r.Categories
		if orgType == types.OrgTypeAgency {
			paths = append(paths, "interest_categories")
		} else {
			paths = append(paths, "service_categories")
		}
	}
	if r.About != nil {
		in.About = *r.About
		paths = append(paths, "about")
	}
	if r.ServicesText != nil {
		in.ServicesText = *r.ServicesText
		paths = append(paths, "services_text")
	}

	return in, paths
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
	mux.Post("/api/v0/onboarding/agency", a.onboardAgency)
	mux.Post("/api/v0/onboarding/supplier", a.onboardSupplier)
	mux.Get("/api/v0/organization", a.getOrganization)

	mux.Get("/api/v0/agencies", a.listAgencies)
	mux.Get("/api/v0/agencies/{id}", a.getAgency)
	mux.Patch("/api/v0/agencies/{id}", a.updateAgency)
	mux.Post("/api/v0/agencies/{id}/publish", a.publishAgency)
	mux.Post("/api/v0/agencies/{id}/unpublish", a.unpublishAgency)
	mux.Delete("/api/v0/agencies/{id}", a.deleteAgency)

	mux.Get("/api/v0/suppliers", a.listSuppliers)
	mux.Get("/api/v0/suppliers/search", a.searchSuppliers)
	mux.Get("/api/v0/suppliers/{id}", a.getSupplier)
	mux.Patch("/api/v0/suppliers/{id}", a.updateSupplier)
	mux.Post("/api/v0/suppliers/{id}/publish", a.publishSupplier)
	mux.Post("/api/v0/suppliers/{id}/unpublish", a.unpublishSupplier)
	mux.Delete("/api/v0/suppliers/{id}", a.deleteSupplier)
}

func (a *API) onboardAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.onboardAgency")
	defer span.End()

	input, ok := a.decodeOnboard(w, r)
	if !ok {
		return
	}

	agency, err := a.service.OnboardAgency(ctx, input)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, agency)
}

func (a *API) onboardSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.onboardSupplier")
	defer span.End()

	input, ok := a.decodeOnboard(w, r)
	if !ok {
		return
	}

	supplier, err := a.service.OnboardSupplier(ctx, input)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusCreated, supplier)
}

func (a *API) getOrganization(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.getOrganization")
	defer span.End()

	org, err := a.service.GetOrganization(ctx)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, org)
}

// pageParams reads the page and size query parameters. Absent or
// malformed values are left at zero so storage applies its defaults.
func pageParams(r *http.Request) storage.Pagination {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	return storage.Pagination{Page: page, Size: size}
}

func (a *API) listAgencies(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listAgencies")
	defer span.End()

	agencies, err := a.service.ListAgencies(ctx, storage.OrgFilter{Pagination: pageParams(r)})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, agencies)
}

func (a *API) getAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.getAgency")
	defer span.End()

	agency, err := a.service.GetAgency(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, agency)
}

func (a *API) updateAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.updateAgency")
	defer span.End()

	var req updateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	input, paths := req.input(types.OrgTypeAgency)
	agency, err := a.service.UpdateAgency(ctx, chi.URLParam(r, "id"), input, paths)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, agency)
}

func (a *API) publishAgency(w http.ResponseWriter, r *http.Request) {
	a.setAgencyPublished(w, r, true, "organizations.API.publishAgency")
}

func (a *API) unpublishAgency(w http.ResponseWriter, r *http.Request) {
	a.setAgencyPublished(w, r, false, "organizations.API.unpublishAgency")
}

func (a *API) setAgencyPublished(w http.ResponseWriter, r *http.Request, published bool, spanName string) {
	ctx, span := a.tracer.Start(r.Context(), spanName)
	defer span.End()

	if err := a.service.SetAgencyPublished(ctx, chi.URLParam(r, "id"), published); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) deleteAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.deleteAgency")
	defer span.End()

	if err := a.service.DeleteAgency(ctx, chi.URLParam(r, "id")); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) listSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listSuppliers")
	defer span.End()

	suppliers, err := a.service.ListSuppliers(ctx, storage.OrgFilter{Pagination: pageParams(r)})
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, suppliers)
}

func (a *API) searchSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.searchSuppliers")
	defer span.End()

	filter := storage.OrgFilter{
		Name:       r.URL.Query().Get("q"),
		CategoryID: r.URL.Query().Get("category"),
		Pagination: pageParams(r),
	}

	suppliers, err := a.service.ListSuppliers(ctx, filter)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, suppliers)
}

func (a *API) getSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.getSupplier")
	defer span.End()

	supplier, err := a.service.GetSupplier(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, supplier)
}

func (a *API) updateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.updateSupplier")
	defer span.End()

	var req updateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return
	}

	input, paths := req.input(types.OrgTypeSupplier)
	supplier, err := a.service.UpdateSupplier(ctx, chi.URLParam(r, "id"), input, paths)
	if err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, supplier)
}

func (a *API) publishSupplier(w http.ResponseWriter, r *http.Request) {
	a.setSupplierPublished(w, r, true, "organizations.API.publishSupplier")
}

func (a *API) unpublishSupplier(w http.ResponseWriter, r *http.Request) {
	a.setSupplierPublished(w, r, false, "organizations.API.unpublishSupplier")
}

func (a *API) setSupplierPublished(w http.ResponseWriter, r *http.Request, published bool, spanName string) {
	ctx, span := a.tracer.Start(r.Context(), spanName)
	defer span.End()

	if err := a.service.SetSupplierPublished(ctx, chi.URLParam(r, "id"), published); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.deleteSupplier")
	defer span.End()

	if err := a.service.DeleteSupplier(ctx, chi.URLParam(r, "id")); err != nil {
		httptypes.JSONError(w, err)
		return
	}

	httptypes.JSONResponse(w, http.StatusOK, nil)
}

func (a *API) decodeOnboard(w http.ResponseWriter, r *http.Request) (*OrgInput, bool) {
	var req onboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, "invalid request body")
		return nil, false
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.JSONErrorMessage(w, types.KindValidation, err.Error())
		return nil, false
	}

	return &OrgInput{
		Name:         req.Name,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		BrochureURL:  req.BrochureURL,
		Location:     req.Location,
		Categories:   req.Categories,
		About:        req.About,
		ServicesText: req.ServicesText,
	}, true
}
