package routers

import (
	"conexperto-service/internal/app/delivery/http/controllers"
	"conexperto-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBankRoutes(router chi.Router, middlewares *middlewares.Middlewares, bankController *controllers.BankController) {
	router.Get("/", bankController.ListFinancialInstitutions)
}
