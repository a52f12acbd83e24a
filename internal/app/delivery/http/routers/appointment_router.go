package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController, paymentController *controllers.PaymentController) {
	router.Post("/", appointmentController.Create)
	router.Get("/{appointmentID}", appointmentController.GetByID)
	router.Put("/{appointmentID}/complete-payment", paymentController.CompletePayment)
	router.With(middlewares.Authenticate).Get("/professional/{professionalID}", appointmentController.GetByProfessional)
}
