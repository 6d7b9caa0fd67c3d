package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the failure envelope: a human-readable message plus optional
// diagnostic detail.
type ErrorBody struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

// MessageBody carries a plain confirmation, with a bearer token where the
// operation minted one (register/login).
type MessageBody struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(MessageBody{Message: message})
}

func TokenResponse(c *fiber.Ctx, status int, message, token string) error {
	return c.Status(status).JSON(MessageBody{Message: message, Token: token})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, status int, message string, detail any) error {
	return c.Status(status).JSON(ErrorBody{Message: message, Error: detail})
}

func BadRequestResponse(c *fiber.Ctx, message string, detail any) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, detail)
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", details)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message, nil)
}

func ForbiddenResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponse(c, fiber.StatusForbidden, message, nil)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message, nil)
}

func InternalServerErrorResponse(c *fiber.Ctx, message string, detail any) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message, detail)
}
