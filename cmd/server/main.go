package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"munsociety/config"
	"munsociety/internal/adapters/auth"
	"munsociety/internal/adapters/email"
	"munsociety/internal/adapters/revalidate"
	delivery "munsociety/internal/delivery/http"
	"munsociety/internal/delivery/http/controllers"
	"munsociety/internal/delivery/http/middleware"
	"munsociety/internal/repository/postgres"
	"munsociety/internal/services"
)

// @title        MUN Society API
// @version      1.0
// @description  Content and settings backend for the society site.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	notifier := revalidate.NewNotifier(revalidate.Config{
		URL:    cfg.RevalidateURL,
		Secret: cfg.RevalidateSecret,
	}, &http.Client{Timeout: 10 * time.Second}, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	verifier := auth.NewPlainVerifier(cfg.AdminUser, cfg.AdminPassword)
	if cfg.AdminPasswordHash != "" {
		verifier = auth.NewBcryptVerifier(cfg.AdminUser, cfg.AdminPasswordHash)
	}

	timeout := cfg.RequestTimeout
	eventSvc := services.NewEventService(postgres.NewEventRepository(db), notifier, logger, timeout)
	publicationSvc := services.NewPublicationService(postgres.NewPublicationRepository(db), notifier, logger, timeout)
	gallerySvc := services.NewGalleryService(postgres.NewGalleryRepository(db), notifier, logger, timeout)
	teamSvc := services.NewTeamService(postgres.NewTeamRepository(db), notifier, logger, timeout)
	timelineSvc := services.NewTimelineService(postgres.NewTimelineRepository(db), notifier, logger, timeout)
	categorySvc := services.NewCategoryService(postgres.NewCategoryRepository(db), notifier, logger, timeout)
	settingsSvc := services.NewSettingsService(postgres.NewSettingRepository(db), notifier, logger, timeout)
	authSvc := services.NewAuthService(verifier, logger)
	contactSvc := services.NewContactService(mailer, cfg.ContactRecipient, logger, timeout)

	router := delivery.NewRouter(delivery.Controllers{
		Events:       controllers.NewEventController(logger, eventSvc),
		Publications: controllers.NewPublicationController(logger, publicationSvc),
		Gallery:      controllers.NewGalleryController(logger, gallerySvc),
		Team:         controllers.NewTeamController(logger, teamSvc),
		Timeline:     controllers.NewTimelineController(logger, timelineSvc),
		Categories:   controllers.NewCategoryController(logger, categorySvc),
		Settings:     controllers.NewSettingsController(logger, settingsSvc),
		Auth:         controllers.NewAuthController(logger, authSvc, cfg.IsProduction()),
		Contact:      controllers.NewContactController(logger, contactSvc),
	})

	handler := middleware.LoggingMiddleware(logger,
		middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
