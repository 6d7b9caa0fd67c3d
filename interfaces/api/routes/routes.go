package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktracker/interfaces/api/handlers"
	"tasktracker/pkg/tokens"
)

// SetupRoutes mounts every route group on the app.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, tokenService *tokens.Service) {
	SetupHealthRoutes(app)

	api := app.Group("/api")
	SetupAuthRoutes(api, h.AuthHandler, tokenService)
	SetupTaskRoutes(api, h.TaskHandler, tokenService)
}
