package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate).Get("/analytics", analyticsController.Overview)
}
