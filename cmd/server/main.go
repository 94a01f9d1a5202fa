package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	_ "launchpage/docs"

	"launchpage/config"
	"launchpage/internal/adapters/email"
	deliveryhttp "launchpage/internal/delivery/http"
	"launchpage/internal/delivery/http/controllers"
	"launchpage/internal/domain"
	"launchpage/internal/obs"
	"launchpage/internal/services"
)

const shutdownTimeout = 15 * time.Second

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg)

	target, err := domain.NewReleaseTarget(cfg.Release.Date, cfg.Release.Timezone)
	if err != nil {
		logger.Error("invalid release configuration", "error", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider: cfg.Email.Provider,
		From:     cfg.Email.From,
		Timeout:  cfg.Email.Timeout,
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Secure:   cfg.Email.Secure,
			Username: cfg.Email.User,
			Password: cfg.Email.Password,
			Timeout:  cfg.Email.Timeout,
		},
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		Resend: email.ResendConfig{APIKey: cfg.Email.ResendAPIKey},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to parse email templates", "error", err)
		os.Exit(1)
	}

	metrics := obs.NewMetrics()

	// Services
	emailService := services.NewEmailService(logger, mailer, renderer)
	subscriptionService := services.NewSubscriptionService(logger, emailService, services.SubscriptionConfig{
		AdminEmail:         cfg.Email.AdminEmail,
		ContactEmail:       cfg.Email.AdminEmail,
		AppName:            cfg.Site.AppName,
		SiteURL:            cfg.Site.URL,
		SubmissionTimezone: cfg.Email.SubmissionTimezone,
	}, metrics, nil)
	countdownService := services.NewCountdownService(target, nil)

	// Controllers
	subscriptionController := controllers.NewSubscriptionController(logger, subscriptionService)
	pageController, err := controllers.NewPageController(logger, countdownService, controllers.SiteInfo{
		AppName:     cfg.Site.AppName,
		URL:         cfg.Site.URL,
		Description: cfg.Site.Description,
	})
	if err != nil {
		logger.Error("failed to build landing page", "error", err)
		os.Exit(1)
	}

	mux := deliveryhttp.NewRouter(subscriptionController, pageController, metrics)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           deliveryhttp.NewHandler(logger, cfg.CORSOrigins, metrics, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2*cfg.Email.Timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"addr", srv.Addr,
			"env", cfg.Environment,
			"app", cfg.Site.AppName,
			"release", target.Instant.Format(time.RFC3339),
			"release_tz", target.Timezone,
			"email_provider", cfg.Email.Provider,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}

	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
