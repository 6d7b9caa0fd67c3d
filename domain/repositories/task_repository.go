package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tasktracker/domain/models"
)

// TaskFilter describes a filtered, ordered, paginated task query. SortBy is a
// column name already validated by the caller; Order is "asc" or "desc".
type TaskFilter struct {
	Priority *int
	Status   string
	SortBy   string
	Order    string
	Offset   int
	Limit    int
}

// TaskRepository is pure persistence: every lookup and mutation below is scoped
// by owner where it takes a userID, but ownership policy and validation belong
// to the services.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*models.Task, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
	DeleteManyForUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error)
	CountOverduePending(ctx context.Context, now time.Time) (int64, error)
}
