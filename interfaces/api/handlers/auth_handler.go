package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasktracker/domain/dto"
	"tasktracker/domain/services"
	"tasktracker/pkg/tokens"
	"tasktracker/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register creates a new account and returns a signed token for it.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, _, err := h.userService.Register(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			return utils.BadRequestResponse(c, "Email already in use", nil)
		}
		return utils.InternalServerErrorResponse(c, "Error registering user", err.Error())
	}

	return utils.TokenResponse(c, fiber.StatusCreated, "User registered successfully", token)
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, _, err := h.userService.Login(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.BadRequestResponse(c, "Invalid email or password", nil)
		}
		return utils.InternalServerErrorResponse(c, "Error logging in user", err.Error())
	}

	return utils.TokenResponse(c, fiber.StatusOK, "Login successful", token)
}

// Logout revokes the caller's token for the remainder of its lifetime.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := tokens.ExtractToken(c.Get("Authorization"))
	if token == "" {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	if err := h.userService.Logout(c.Context(), token); err != nil {
		return utils.InternalServerErrorResponse(c, "Error logging out user", err.Error())
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Logged out successfully")
}
