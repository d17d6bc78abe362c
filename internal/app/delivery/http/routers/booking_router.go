package routers

import (
	"bookings-gateway/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBusinessRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/", bookingController.ListBusinesses)
}

func attachAppointmentRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/{business_id}", bookingController.ListAppointments)
	router.Post("/{business_id}", bookingController.CreateAppointment)
}
