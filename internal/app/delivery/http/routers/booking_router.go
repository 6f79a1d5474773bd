package routers

import (
	"conexperto-service/internal/app/delivery/http/controllers"
	"conexperto-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.With(middlewares.Authenticate).Get("/", bookingController.FindAllBookings)
	router.With(middlewares.Authenticate).Get("/{bookingID}", bookingController.FindBookingByID)
}
