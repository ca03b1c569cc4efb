// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quoteportal/rfq-service/internal/config"
	"github.com/quoteportal/rfq-service/internal/db"
	"github.com/quoteportal/rfq-service/internal/kratos"
	"github.com/quoteportal/rfq-service/internal/logging"
	"github.com/quoteportal/rfq-service/internal/mail"
	"github.com/quoteportal/rfq-service/internal/monitoring/prometheus"
	"github.com/quoteportal/rfq-service/internal/objectstore"
	"github.com/quoteportal/rfq-service/internal/storage"
	"github.com/quoteportal/rfq-service/internal/tracing"
	"github.com/quoteportal/rfq-service/pkg/web"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("rfq-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var mailer mail.EmailInterface
	if specs.MailEnabled {
		mailer, err = mail.NewClient(
			mail.Config{
				Region:      specs.AWSRegion,
				AccessKeyID: specs.AWSAccessKeyID,
				SecretKey:   specs.AWSSecretKey,
				FromAddress: specs.MailFromAddress,
				FromName:    specs.MailFromName,
				ReplyTo:     specs.MailReplyTo,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create mail client: %v", err)
		}
		logger.Info("Transactional mail is enabled")
	} else {
		mailer = mail.NewNoopClient(logger)
		logger.Info("Using noop mail client")
	}

	var objects objectstore.ObjectStoreInterface
	if specs.StorageAccessKeyID != "" {
		objects, err = objectstore.NewClient(
			objectstore.Config{
				Bucket:        specs.StorageBucket,
				AccessKeyID:   specs.StorageAccessKeyID,
				SecretKey:     specs.StorageSecretKey,
				Endpoint:      specs.StorageEndpoint,
				PublicBaseURL: specs.StoragePublicBaseURL,
				PresignExpiry: specs.StoragePresignExpiry,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create object store client: %v", err)
		}
	} else {
		objects = objectstore.NewNoopClient(logger)
		logger.Info("Using noop object store")
	}

	router := web.NewRouter(
		web.Config{
			AppBaseURL:         specs.AppBaseURL,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			CategoryCacheTTL:   specs.CategoryCacheTTL,
			InvitationLifetime: specs.InvitationLifetime,
			SelfPromotion:      specs.Debug,
		},
		s,
		dbClient,
		kratosClient,
		mailer,
		objects,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
