package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.With(middlewares.RequirePermission(constvars.ActionViewOwnProfile)).Get("/profile", authController.GetProfile)
		r.With(middlewares.RequirePermission(constvars.ActionUploadProfilePicture)).Put("/profile/picture", authController.UploadProfilePicture)
		r.With(middlewares.RequirePermission(constvars.ActionLogout)).Post("/logout", authController.Logout)
	})
}
