package routers

import (
	"bookings-gateway/internal/app/delivery/http/controllers"
	"bookings-gateway/internal/app/delivery/http/middlewares"
	"bookings-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	middlewares *middlewares.Middlewares,
	bookingController *controllers.BookingController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders: []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get(constvars.HealthCheckEndpoint, bookingController.HealthCheck)
	router.Handle(constvars.MetricsEndpointPath, promhttp.Handler())

	router.Route("/businesses", func(r chi.Router) {
		attachBusinessRoutes(r, bookingController)
	})

	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, bookingController)
	})
}
