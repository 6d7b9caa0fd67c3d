package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktracker/domain/models"
	"tasktracker/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.SortBy != "" {
		// SortBy is restricted to known columns by the service layer.
		direction := "ASC"
		if strings.EqualFold(filter.Order, "desc") {
			direction = "DESC"
		}
		q = q.Order(filter.SortBy + " " + direction)
	}

	var tasks []*models.Task
	err := q.Offset(filter.Offset).Limit(filter.Limit).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	return res.RowsAffected, res.Error
}

func (r *TaskRepositoryImpl) DeleteManyForUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ? AND user_id = ?", ids, userID).Delete(&models.Task{})
	return res.RowsAffected, res.Error
}

func (r *TaskRepositoryImpl) CountOverduePending(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("status = ? AND end_time < ?", models.StatusPending, now).
		Count(&count).Error
	return count, err
}
