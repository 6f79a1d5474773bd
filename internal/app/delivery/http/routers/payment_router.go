package routers

import (
	"conexperto-service/internal/app/delivery/http/controllers"
	"conexperto-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Post("/callback", paymentController.PaymentCallback)
}
