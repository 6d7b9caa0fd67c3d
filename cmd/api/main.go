package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"tasktracker/interfaces/api/handlers"
	"tasktracker/interfaces/api/middleware"
	"tasktracker/interfaces/api/routes"
	"tasktracker/pkg/di"
	"tasktracker/pkg/logger"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Cleanup()

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS))

	services := container.GetHandlerServices()
	routes.SetupRoutes(app, handlers.NewHandlers(services), services.TokenService)

	go func() {
		addr := ":" + cfg.App.Port
		logger.Info("Starting server", "addr", addr, "env", cfg.App.Env)
		if err := app.Listen(addr); err != nil {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("Failed to shut down server gracefully", "error", err)
	}
}
