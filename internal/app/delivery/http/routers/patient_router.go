package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.With(middlewares.RequirePermission(constvars.ActionViewPatientRecord)).Get("/", patientController.FindAll)
		r.With(middlewares.RequirePermission(constvars.ActionViewPatientRecord)).Get("/{"+constvars.URLParamID+"}", patientController.FindByID)
		r.With(middlewares.RequirePermission(constvars.ActionUpdatePatientProfile)).Put("/profile", patientController.UpdateProfile)
		r.With(middlewares.RequirePermission(constvars.ActionAppendMedicalHistory)).Post("/medical-history", patientController.AppendMedicalHistory)
	})
}
