package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Post("/create-order", paymentController.CreateOrder)
}
