package services

import (
	"context"

	"tasktracker/domain/dto"
	"tasktracker/domain/models"
)

type UserService interface {
	// Register creates a user and returns a fresh bearer token alongside it.
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	// Login verifies credentials and returns a fresh bearer token.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	// Logout revokes the presented token where a revocation list is configured.
	Logout(ctx context.Context, token string) error
}
