package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Use(Gatekeeper())

	auth := app.Group("/auth")
	auth.Post("/send-otp", h.SendOTP)
	auth.Post("/verify-otp", h.VerifyOTP)
	auth.Post("/login", h.Login)
	auth.Get("/me", h.Me)
	auth.Get("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)
}
