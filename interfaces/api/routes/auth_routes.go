package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktracker/interfaces/api/handlers"
	"tasktracker/interfaces/api/middleware"
	"tasktracker/pkg/tokens"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.AuthHandler, tokenService *tokens.Service) {
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/logout", middleware.Protected(tokenService), h.Logout)
}
