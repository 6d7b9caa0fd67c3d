package handlers

import (
	"tasktracker/domain/services"
	"tasktracker/pkg/tokens"
)

// Services carries everything the handler layer depends on.
type Services struct {
	UserService  services.UserService
	TaskService  services.TaskService
	TokenService *tokens.Service
}

type Handlers struct {
	AuthHandler *AuthHandler
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
