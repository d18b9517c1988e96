// Package server boots and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zhaygo/backend/app/controllers"
	"github.com/zhaygo/backend/app/repositories"
	"github.com/zhaygo/backend/app/routes"
	"github.com/zhaygo/backend/app/services"
	"github.com/zhaygo/backend/app/uploads"
	"github.com/zhaygo/backend/config"
	"github.com/zhaygo/backend/database/migrations"
	"github.com/zhaygo/backend/pkg/database"
	"github.com/zhaygo/backend/pkg/logger"
	"github.com/zhaygo/backend/pkg/metrics"
	"github.com/zhaygo/backend/pkg/middleware"
	"github.com/zhaygo/backend/pkg/reqid"
	"github.com/zhaygo/backend/pkg/router"
	"github.com/zhaygo/backend/pkg/storage"
)

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	// Optional MongoDB log sink, fanned out next to stdout.
	if uri := config.LogMongoURI(); uri != "" {
		mh, err := logger.NewMongoHandler(uri, config.MongoDatabase(), "logs")
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer mh.Close()
			logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), mh))
		}
	}

	ctx := context.Background()
	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Close(ctx)

	if err := migrations.Run(ctx, database.DB()); err != nil {
		return err
	}

	storage.Connect()
	if err := storage.MakeDirectory("uploads"); err != nil {
		return err
	}

	r := NewRouter(buildControllers())

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the middleware chain and registers every route.
// Split out from Start so the CLI can list routes without a database.
func NewRouter(c routes.Controllers) *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.Register(r, c)
	return r
}

func buildControllers() routes.Controllers {
	db := database.DB()

	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	imageStore := uploads.New(storage.Use(storage.DefaultName()), storage.DefaultName())

	return routes.Controllers{
		Auth:    controllers.NewAuthController(services.NewAuthService(userRepo)),
		Profile: controllers.NewProfileController(services.NewProfileService(userRepo, imageStore)),
		Orders:  controllers.NewOrderController(services.NewOrderService(userRepo, orderRepo)),
		Pages:   controllers.NewPagesController(config.TemplateDir(), database.Ping),
	}
}
