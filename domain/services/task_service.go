package services

import (
	"context"

	"github.com/google/uuid"

	"tasktracker/domain/dto"
	"tasktracker/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, query *dto.TaskListQuery) ([]*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	DeleteTasks(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	TaskSummary(ctx context.Context, userID uuid.UUID) (*dto.TaskSummaryResponse, error)
}
