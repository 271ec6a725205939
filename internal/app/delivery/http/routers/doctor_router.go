package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/specialization/{"+constvars.URLParamSpecialization+"}", doctorController.FindBySpecialization)
	router.Get("/{"+constvars.URLParamID+"}", doctorController.FindByID)
	router.With(
		middlewares.Authenticate,
		middlewares.RequirePermission(constvars.ActionUpdateDoctorProfile),
	).Put("/profile", doctorController.UpdateProfile)
}
