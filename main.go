package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jeomhps/lodging-api/internal/auth"
	"github.com/Jeomhps/lodging-api/internal/config"
	"github.com/Jeomhps/lodging-api/internal/logging"
	"github.com/Jeomhps/lodging-api/internal/router"
	"github.com/Jeomhps/lodging-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(config.Default().Logging).WithError(err).Fatal("load config")
	}
	log := logging.New(cfg.Logging)

	s := store.New(store.Options{ValidateParents: cfg.Store.ValidateParents})

	// Seed default admin (optional)
	if cfg.Seed.AdminEmail != "" && cfg.Seed.AdminPassword != "" {
		u, created, err := s.Users.Ensure(cfg.Seed.AdminEmail, "Admin", cfg.Seed.AdminPassword)
		if err != nil {
			log.WithError(err).Warn("ensure default admin")
		} else if created {
			log.WithField("user_id", u.ID).Info("default admin created")
		}
	}
	if cfg.Auth.JWTSecret == config.Default().Auth.JWTSecret && cfg.Auth.Mode == config.AuthJWT {
		log.Warn("JWT_SECRET is the built-in default; set it outside development")
	}

	gin.SetMode(gin.ReleaseMode)
	r, err := router.New(router.Deps{
		Config: cfg,
		Store:  s,
		Issuer: auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute),
		Log:    log,
	})
	if err != nil {
		log.WithError(err).Fatal("build router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":      cfg.Addr,
			"auth_mode": cfg.Auth.Mode,
			"nested":    cfg.Routes.Nested,
		}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serve")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
