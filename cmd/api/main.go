package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/mailer"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	ucSession "github.com/BruksfildServices01/barber-booking/internal/usecase/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "changeme" {
		log.Warn("JWT_SECRET is the default value; set it outside development")
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database init failed")
	}

	gateway := infraRepo.NewGateway(db)

	if err := ucSession.NewSeedAdmin(gateway).Execute(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("admin seed failed")
	}

	// ======================================================
	// SESSION REVOCATION
	// ======================================================
	var revocation auth.RevocationStore = auth.NewMemoryRevocationStore()
	redisClient, err := cache.NewRedis(ctx, cfg.RedisURL, log)
	if err != nil {
		log.WithError(err).Fatal("redis init failed")
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocation = auth.NewRedisRevocationStore(redisClient)
	}

	// ======================================================
	// MAIL + AUDIT
	// ======================================================
	sender, err := mailer.New(cfg.Mail, log)
	if err != nil {
		log.WithError(err).Fatal("mailer init failed")
	}
	if cfg.ReceiverEmail == "" {
		log.Warn("RECEIVER_EMAIL is empty; business notifications will fail")
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          log,
		Appointments: gateway,
		Users:        gateway,
		Notifier:     notify.New(sender, cfg.ReceiverEmail, log),
		Revocation:   revocation,
		Audit:        auditDispatcher,
		AuditLogs:    auditLogger,
	})

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

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
