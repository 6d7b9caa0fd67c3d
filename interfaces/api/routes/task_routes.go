package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasktracker/interfaces/api/handlers"
	"tasktracker/interfaces/api/middleware"
	"tasktracker/pkg/tokens"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.TaskHandler, tokenService *tokens.Service) {
	tasks := api.Group("/tasks", middleware.Protected(tokenService))

	tasks.Get("/", h.ListTasks)
	tasks.Get("/summary", h.TaskSummary)
	tasks.Post("/", h.CreateTask)
	tasks.Put("/:id", h.UpdateTask)
	tasks.Delete("/", h.DeleteTasks)
	tasks.Delete("/:id", h.DeleteTask)
}
