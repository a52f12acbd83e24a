package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfessionalRoutes(router chi.Router, middlewares *middlewares.Middlewares, professionalController *controllers.ProfessionalController) {
	router.Get("/", professionalController.GetApproved)
	router.Get("/subdomain/{subdomain}", professionalController.GetBySubdomain)
	router.With(middlewares.Authenticate).Post("/", professionalController.Create)
	router.With(middlewares.Authenticate).Put("/{professionalID}/status", professionalController.UpdateStatus)
	router.With(middlewares.Authenticate).Post("/{professionalID}/profile-photo", professionalController.UploadProfilePhoto)
}
