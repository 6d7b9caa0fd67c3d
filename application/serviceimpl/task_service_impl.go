package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"tasktracker/domain/dto"
	"tasktracker/domain/models"
	"tasktracker/domain/ports"
	"tasktracker/domain/repositories"
	"tasktracker/domain/services"
	"tasktracker/pkg/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// sortColumns maps the caller-visible sort fields onto store columns. Anything
// outside this set is rejected rather than passed through to the store.
var sortColumns = map[string]string{
	"title":     "title",
	"startTime": "start_time",
	"endTime":   "end_time",
	"priority":  "priority",
	"status":    "status",
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.TaskEventPublisher // nil disables event publishing
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if req.StartTime == nil || req.StartTime.IsZero() || req.EndTime == nil || req.EndTime.IsZero() {
		return nil, services.ErrInvalidTimeWindow
	}
	if !req.StartTime.Before(req.EndTime.Time) {
		return nil, services.ErrInvalidTimeWindow
	}

	task := &models.Task{
		ID:        uuid.New(),
		Title:     req.Title,
		StartTime: req.StartTime.Time,
		EndTime:   req.EndTime.Time,
		Priority:  req.Priority,
		Status:    req.Status,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskCreated, userID, task.ID)

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, query *dto.TaskListQuery) ([]*models.Task, error) {
	filter := repositories.TaskFilter{
		Priority: query.Priority,
		Status:   query.Status,
	}

	if query.SortBy != "" {
		column, ok := sortColumns[query.SortBy]
		if !ok {
			return nil, services.ErrInvalidSortField
		}
		filter.SortBy = column
		// Only an explicit "desc" reverses; anything else sorts ascending.
		if query.Order == "desc" {
			filter.Order = "desc"
		} else {
			filter.Order = "asc"
		}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	tasks, err := s.taskRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}

	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	// The owner-scoped lookup deliberately collapses "doesn't exist" and
	// "belongs to someone else" into the same not-found answer.
	task, err := s.taskRepo.GetByIDForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Task not found for update", "task_id", taskID, "user_id", userID)
			return nil, services.ErrTaskNotFound
		}
		logger.ErrorContext(ctx, "Failed to load task for update", "task_id", taskID, "error", err)
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.StartTime != nil && !req.StartTime.IsZero() {
		task.StartTime = req.StartTime.Time
	}
	if req.EndTime != nil && !req.EndTime.IsZero() {
		task.EndTime = req.EndTime.Time
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if !task.StartTime.Before(task.EndTime) {
		return nil, services.ErrInvalidTimeWindow
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskUpdated, userID, taskID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	deleted, err := s.taskRepo.DeleteForUser(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}
	if deleted == 0 {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID, "user_id", userID)
		return services.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskDeleted, userID, taskID)

	return nil
}

func (s *TaskServiceImpl) DeleteTasks(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, services.ErrNoTaskIDs
	}

	// Best-effort set delete: ids outside the owner's scope are skipped
	// silently, not reported.
	deleted, err := s.taskRepo.DeleteManyForUser(ctx, ids, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to bulk delete tasks", "user_id", userID, "error", err)
		return 0, err
	}
	if deleted == 0 {
		logger.WarnContext(ctx, "No tasks matched for bulk deletion", "user_id", userID, "requested", len(ids))
		return 0, services.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Tasks deleted", "user_id", userID, "deleted", deleted)
	s.publishEvent(ctx, ports.TaskDeleted, userID, ids...)

	return deleted, nil
}

func (s *TaskServiceImpl) TaskSummary(ctx context.Context, userID uuid.UUID) (*dto.TaskSummaryResponse, error) {
	tasks, err := s.taskRepo.ListAllByUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load tasks for summary", "user_id", userID, "error", err)
		return nil, err
	}

	now := time.Now()
	groups := make(map[int]*dto.PrioritySummary)
	summary := &dto.TaskSummaryResponse{
		TotalTasks: len(tasks),
		Priorities: []dto.PrioritySummary{},
	}

	for _, task := range tasks {
		group, ok := groups[task.Priority]
		if !ok {
			group = &dto.PrioritySummary{Priority: task.Priority}
			groups[task.Priority] = group
		}

		lapsed := now.Sub(task.StartTime).Hours()
		left := task.EndTime.Sub(now).Hours()
		if left < 0 {
			left = 0
		}

		group.TaskCount++
		group.TimeLapsedHours += lapsed
		group.TimeLeftHours += left
		summary.TotalTimeLapsedHours += lapsed
		summary.TotalTimeLeftHours += left

		switch task.Status {
		case models.StatusPending:
			group.PendingCount++
			summary.PendingCount++
		case models.StatusFinished:
			summary.FinishedCount++
		}
	}

	if summary.TotalTasks > 0 {
		summary.PendingPercentage = float64(summary.PendingCount) / float64(summary.TotalTasks) * 100
		summary.FinishedPercentage = float64(summary.FinishedCount) / float64(summary.TotalTasks) * 100
	}

	for _, group := range groups {
		summary.Priorities = append(summary.Priorities, *group)
	}
	sort.Slice(summary.Priorities, func(i, j int) bool {
		return summary.Priorities[i].Priority < summary.Priorities[j].Priority
	})

	return summary, nil
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, eventType string, ownerID uuid.UUID, taskIDs ...uuid.UUID) {
	if s.events == nil {
		return
	}

	event := &ports.TaskEvent{
		Type:       eventType,
		OwnerID:    ownerID,
		TaskIDs:    taskIDs,
		OccurredAt: time.Now(),
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		// Event delivery is advisory; the mutation already committed.
		logger.WarnContext(ctx, "Failed to publish task event", "type", eventType, "error", err)
	}
}
