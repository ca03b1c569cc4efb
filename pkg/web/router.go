// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	"github.com/quoteportal/rfq-service/internal/authorization"
	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/identity"
	"github.com/quoteportal/rfq-service/internal/kratos"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/mail"
	"github.com/quoteportal/rfq-service/internal/monitoring"
	"github.com/quoteportal/rfq-service/internal/objectstore"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/pkg/categories"
	"github.com/quoteportal/rfq-service/pkg/gallery"
	"github.com/quoteportal/rfq-service/pkg/metrics"
	"github.com/quoteportal/rfq-service/pkg/organizations"
	"github.com/quoteportal/rfq-service/pkg/profiles"
	"github.com/quoteportal/rfq-service/pkg/rfqinvites"
	"github.com/quoteportal/rfq-service/pkg/rfqs"
	"github.com/quoteportal/rfq-service/pkg/status"
	"github.com/quoteportal/rfq-service/pkg/team"
	"github.com/quoteportal/rfq-service/pkg/waitlist"
	"github.com/quoteportal/rfq-service/pkg/webhooks"
	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config carries the request-independent settings the router needs.
type Config struct {
	AppBaseURL         string
	CORSAllowedOrigins []string
	CategoryCacheTTL   time.Duration
	InvitationLifetime time.Duration
	// SelfPromotion allows a profile to grant itself an admin role.
	// Only ever enabled in development environments.
	SelfPromotion bool
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	kratosClient kratos.ClientInterface,
	mailer mail.EmailInterface,
	objects objectstore.ObjectStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", identity.HeaderName},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	authz := authorization.NewAuthorizer(tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	profilesSvc := profiles.NewService(s, kratosClient, cfg.SelfPromotion, tracer, monitor, logger)
	profiles.NewAPI(profilesSvc, tracer, monitor, logger).RegisterEndpoints(router)

	categoriesSvc := categories.NewService(s, authz, cfg.CategoryCacheTTL, tracer, monitor, logger)
	categories.NewAPI(categoriesSvc, tracer, monitor, logger).RegisterEndpoints(router)

	organizationsSvc := organizations.NewService(s, dbClient, authz, tracer, monitor, logger)
	organizations.NewAPI(organizationsSvc, tracer, monitor, logger).RegisterEndpoints(router)

	gallerySvc := gallery.NewService(s, dbClient, objects, authz, tracer, monitor, logger)
	gallery.NewAPI(gallerySvc, tracer, monitor, logger).RegisterEndpoints(router)

	rfqsSvc := rfqs.NewService(s, dbClient, mailer, authz, tracer, monitor, logger)
	rfqs.NewAPI(rfqsSvc, tracer, monitor, logger).RegisterEndpoints(router)

	invitesSvc := rfqinvites.NewService(s, dbClient, mailer, objects, authz, tracer, monitor, logger)
	rfqinvites.NewAPI(invitesSvc, tracer, monitor, logger).RegisterEndpoints(router)

	teamSvc := team.NewService(s, dbClient, kratosClient, mailer, authz, cfg.AppBaseURL, cfg.InvitationLifetime, tracer, monitor, logger)
	team.NewAPI(teamSvc, tracer, monitor, logger).RegisterEndpoints(router)

	waitlistSvc := waitlist.NewService(s, mailer, authz, tracer, monitor, logger)
	waitlist.NewAPI(waitlistSvc, tracer, monitor, logger).RegisterEndpoints(router)

	webhooksSvc := webhooks.NewService(s, tracer, monitor, logger)
	webhooks.NewAPI(webhooksSvc, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
