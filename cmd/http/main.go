package main

import (
	"bookings-gateway/internal/app/config"
	"bookings-gateway/internal/app/delivery/http/controllers"
	"bookings-gateway/internal/app/delivery/http/middlewares"
	"bookings-gateway/internal/app/delivery/http/routers"
	"bookings-gateway/internal/app/drivers/httpclient"
	"bookings-gateway/internal/app/drivers/logger"
	"bookings-gateway/internal/app/services/core/bookings"
	graph_bookings "bookings-gateway/internal/app/services/graph/bookings"
	"bookings-gateway/internal/app/services/identity"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if internalConfig.Identity.ClientID == "" || internalConfig.Identity.ClientSecret == "" || internalConfig.Identity.TenantID == "" {
		log.Warn("CLIENT_ID, CLIENT_SECRET or TENANT_ID is not set; every request will fail at token acquisition")
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		HTTPClient:     httpclient.NewHTTPClient(),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server starting", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		os.Exit(1)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Identity
	tokenAcquirer := identity.NewTokenAcquirer(
		bootstrap.InternalConfig.Identity,
		bootstrap.InternalConfig.Graph.Scope,
		bootstrap.HTTPClient,
		bootstrap.Logger,
	)

	// Graph
	bookingGraphClient := graph_bookings.NewBookingGraphClient(
		bootstrap.InternalConfig.Graph.BaseUrl,
		bootstrap.HTTPClient,
		bootstrap.Logger,
	)

	// Bookings
	bookingUsecase := bookings.NewBookingUsecase(tokenAcquirer, bookingGraphClient, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(bootstrap.Router, middlewares, bookingController)
}
