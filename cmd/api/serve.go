package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dental-clinic/internal/audit"
	"github.com/BruksfildServices01/dental-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/dental-clinic/internal/db"
	"github.com/BruksfildServices01/dental-clinic/internal/infra/cache"
	"github.com/BruksfildServices01/dental-clinic/internal/infra/payments"
	"github.com/BruksfildServices01/dental-clinic/internal/infra/storage"
	"github.com/BruksfildServices01/dental-clinic/internal/logger"
	"github.com/BruksfildServices01/dental-clinic/internal/routes"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

// bootstrap loads config, sets up logging and the clinic timezone and
// opens the database.
func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.IsDev())

	if !timezone.IsValid(cfg.ClinicTimezone) {
		log.WithField("timezone", cfg.ClinicTimezone).Warn("invalid CLINIC_TIMEZONE, using UTC")
		cfg.ClinicTimezone = "UTC"
	}
	timezone.SetClinic(cfg.ClinicTimezone)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func runServer() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}

	if err := dbpkg.Migrate(db, log); err != nil {
		return err
	}

	if err := validators.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// ======================================================
	// AUDIT
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)
	if err := audit.RegisterCallbacks(db, dispatcher, log); err != nil {
		return fmt.Errorf("failed to register audit callbacks: %w", err)
	}

	// ======================================================
	// OPTIONAL INTEGRATIONS
	// ======================================================
	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Cache:  cache.Noop{},
	}

	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL, "clinic:analytics:", log)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.WithError(err).Warn("redis unreachable, analytics cache will miss until it recovers")
		}
		cancel()
		deps.Cache = redisCache
	}

	if cfg.S3.Enabled() {
		deps.Photos = storage.NewS3Store(cfg.S3)
	} else {
		log.Info("S3 not configured, photo uploads disabled")
	}

	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoAccessToken, cfg.PaymentNotificationURL)
		if err != nil {
			return err
		}
		deps.Payments = mp
	} else {
		log.Info("MP_ACCESS_TOKEN not set, payment links disabled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.WithError(err).Warn("audit queue not fully drained")
	}
	if redisCache != nil {
		_ = redisCache.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("server stopped")
	return nil
}
