package routers

import (
	"conexperto-service/internal/app/delivery/http/controllers"
	"conexperto-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCheckoutRoutes(router chi.Router, middlewares *middlewares.Middlewares, checkoutController *controllers.CheckoutController) {
	router.With(middlewares.Authenticate, middlewares.RequireClient).Post("/", checkoutController.Checkout)
	router.With(middlewares.Authenticate, middlewares.RequireClient).Post("/{bookingID}/retry", checkoutController.RetryPayment)
}
