package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasktracker/pkg/logger"
	"tasktracker/pkg/utils"
)

// ErrorHandler is the last-resort handler for errors that escape the route
// handlers (routing errors, panics converted by fiber, unhandled returns).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err, "path", c.Path())
		}

		return utils.ErrorResponse(c, code, message, nil)
	}
}
