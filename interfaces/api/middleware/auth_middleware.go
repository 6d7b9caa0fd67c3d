package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tasktracker/pkg/logger"
	"tasktracker/pkg/tokens"
	"tasktracker/pkg/utils"
)

// Protected verifies the bearer token on every request and attaches the
// resolved user ID for downstream handlers. The token service is injected so
// the middleware never touches ambient configuration.
//
// Missing header is 401; a token that fails verification is 403, with expiry
// and signature failures distinguished only in the message.
func Protected(tokenService *tokens.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
		}

		token := tokens.ExtractToken(authHeader)

		userID, err := tokenService.Verify(c.UserContext(), token)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token verification failed", "error", err)
			switch {
			case errors.Is(err, tokens.ErrExpiredToken):
				return utils.ForbiddenResponse(c, "Token has expired")
			case errors.Is(err, tokens.ErrRevokedToken):
				return utils.ForbiddenResponse(c, "Token has been revoked")
			default:
				return utils.ForbiddenResponse(c, "Invalid token")
			}
		}

		utils.SetUserContext(c, &utils.UserContext{ID: userID})

		return c.Next()
	}
}
