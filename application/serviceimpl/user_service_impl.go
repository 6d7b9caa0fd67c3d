package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/domain/dto"
	"tasktracker/domain/models"
	"tasktracker/domain/repositories"
	"tasktracker/domain/services"
	"tasktracker/pkg/logger"
	"tasktracker/pkg/tokens"
)

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	tokenService *tokens.Service
}

func NewUserService(userRepo repositories.UserRepository, tokenService *tokens.Service) services.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		logger.WarnContext(ctx, "Registration rejected, email already in use", "email", req.Email)
		return "", nil, services.ErrEmailInUse
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.ErrorContext(ctx, "Failed to check existing email", "error", err)
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return "", nil, err
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Login failed, email not found", "email", req.Email)
			return "", nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Failed to look up user", "error", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed, password mismatch", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.tokenService.Revoke(ctx, token); err != nil {
		logger.WarnContext(ctx, "Token revocation failed", "error", err)
		return err
	}
	return nil
}
