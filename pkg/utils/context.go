package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userContextKey = "user"

// UserContext is the identity the auth gate attaches to each authenticated
// request.
type UserContext struct {
	ID uuid.UUID
}

func SetUserContext(c *fiber.Ctx, user *UserContext) {
	c.Locals(userContextKey, user)
}

func GetUserFromContext(c *fiber.Ctx) (*UserContext, error) {
	user, ok := c.Locals(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}
