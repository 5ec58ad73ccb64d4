package routers

import (
	"taskgo-service/internal/app/delivery/http/middlewares"
	"taskgo-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", userController.UpdateProfile)
	router.With(middlewares.Authenticate).Post("/profile/image", userController.UploadProfileImage)
	router.With(middlewares.Authenticate).Delete("/profile/image", userController.RemoveProfileImage)
}
