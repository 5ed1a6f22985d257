package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-backend/config"
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/captcha"
	"go-contact-backend/pkg/csrf"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
)

// @title           Contact Form Backend
// @version         1.0
// @description     Contact-form submission pipeline: CAPTCHA, CSRF, validation and mail dispatch.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config (fails fast on invalid mail addressing)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup CSRF token store
	csrfStore, err := csrf.NewStore(csrf.Config{
		RedisURL:      cfg.RedisURL,
		RedisPassword: cfg.RedisPassword,
		TokenTTL:      time.Duration(cfg.CsrfTokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		logger.Log.Error("Failed to set up CSRF token store", "error", err)
		os.Exit(1)
	}
	defer csrfStore.Close()
	if cfg.RedisURL == "" {
		logger.Log.Warn("REDIS_URL not configured - CSRF tokens held in memory")
	}

	// 4. Setup Mailer and CAPTCHA verifier
	mailer := email.NewSMTPMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("SMTP not fully configured - contact form sends will fail")
	}

	verifier := captcha.NewVerifier(cfg.CaptchaSecret, cfg.CaptchaVerifyURL)
	if !verifier.IsConfigured() {
		logger.Log.Warn("CAPTCHA not configured - bot verification disabled")
	}

	// 5. Setup UseCase
	contactUC := usecase.NewContactUsecase(cfg, verifier, csrfStore, mailer)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		CsrfStore: csrfStore,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
