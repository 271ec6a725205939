package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.With(middlewares.RequirePermission(constvars.ActionCreateAppointment)).Post("/", appointmentController.Create)
		r.With(middlewares.RequirePermission(constvars.ActionListAppointments)).Get("/", appointmentController.FindAll)
		r.With(middlewares.RequirePermission(constvars.ActionUpdateAppointmentStatus)).Put("/{"+constvars.URLParamID+"}", appointmentController.UpdateStatus)
		r.With(middlewares.RequirePermission(constvars.ActionCancelAppointment)).Delete("/{"+constvars.URLParamID+"}", appointmentController.Cancel)
	})
}
