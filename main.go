package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mrtravel/internal/catalog"
	intconfig "mrtravel/internal/config"
	router "mrtravel/internal/http"
	"mrtravel/internal/http/handlers"
	"mrtravel/internal/repositories"
	"mrtravel/internal/services"
	"mrtravel/internal/utils"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	logger, closer, err := utils.NewLogger(env.LogLevel, env.LogFile)
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}
	defer closer.Close()
	utils.SetLogger(logger)

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	seed := loadSeed(context.Background(), env, logger)
	store, err := repositories.NewStore(seed)
	if err != nil {
		logger.Fatalf("catalog: %v", err)
	}

	hd := &handlers.Handler{
		Store:     store,
		JWTSecret: []byte(env.JWTSecret),
		JWTTTL:    env.JWTTTL,
	}
	if env.JWTSecret == intconfig.DefaultJWTSecret {
		logger.Warn("JWT_SECRET is not set, using the development default")
	}
	if env.AdminEmail != "" {
		auth := services.AuthService{Store: store, Secret: hd.JWTSecret, TTL: hd.JWTTTL, RequestID: "startup"}
		if err := auth.EnsureAdmin(env.AdminEmail, env.AdminPassword); err != nil {
			logger.Fatalf("admin account: %v", err)
		}
	}

	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("shutdown failed: %v", err)
	}

	logger.Info("server stopped")
}

// loadSeed reads hotels from DB_DSN when configured and falls back to the
// built-in catalog when the database is unset, unreachable or empty.
func loadSeed(ctx context.Context, env intconfig.Env, logger *logrus.Logger) repositories.Seed {
	seed := catalog.Default()
	if env.DBDSN == "" {
		return seed
	}

	db, err := intconfig.OpenCatalogDB(ctx, env.DBDSN)
	if err != nil {
		logger.WithError(err).Warn("catalog db unavailable, using built-in hotels")
		return seed
	}
	defer db.Close()

	hotels, err := repositories.HotelSQLRepo{DB: db}.LoadHotels(ctx)
	if err != nil {
		logger.WithError(err).Warn("catalog db load failed, using built-in hotels")
		return seed
	}
	if len(hotels) == 0 {
		logger.Warn("catalog db has no hotels, using built-in hotels")
		return seed
	}
	seed.Hotels = hotels
	logger.WithField("hotels", len(hotels)).Info("catalog loaded from database")
	return seed
}
