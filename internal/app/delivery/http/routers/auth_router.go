package routers

import (
	"taskgo-service/internal/app/delivery/http/middlewares"
	"taskgo-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	// Credential endpoints carry the blocking IP limiter on top of the
	// global httprate limit.
	router.With(middlewares.LoginLimiter.Limit, middlewares.RedirectIfAuthenticated).Post("/register", authController.Register)
	router.With(middlewares.LoginLimiter.Limit, middlewares.RedirectIfAuthenticated).Post("/login", authController.Login)
	router.With(middlewares.LoginLimiter.Limit, middlewares.RedirectIfAuthenticated).Post("/forgot-password", authController.ForgotPassword)
	router.With(middlewares.LoginLimiter.Limit, middlewares.RedirectIfAuthenticated).Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
