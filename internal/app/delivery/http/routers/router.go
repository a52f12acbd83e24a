package routers

import (
	"fmt"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	appointmentController *controllers.AppointmentController,
	paymentController *controllers.PaymentController,
	professionalController *controllers.ProfessionalController,
	analyticsController *controllers.AnalyticsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	attach := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, authController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController, paymentController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, paymentController)
		})

		r.Route("/professionals", func(r chi.Router) {
			attachProfessionalRoutes(r, middlewares, professionalController)
		})

		r.Route("/admin", func(r chi.Router) {
			attachAnalyticsRoutes(r, middlewares, analyticsController)
		})
	}

	if prefix := internalConfig.App.EndpointPrefix; prefix != "" {
		router.Route(fmt.Sprintf("/%s", prefix), func(r chi.Router) {
			r.Route(versionPrefix, attach)
		})
		return
	}
	router.Route(versionPrefix, attach)
}
