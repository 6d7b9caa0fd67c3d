package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasktracker/domain/models"
	"tasktracker/domain/repositories"
)

// TaskRepository is an in-memory task store used for tests and the
// DB_DRIVER=memory development mode. It implements the same filter, sort, and
// pagination semantics as the postgres adapter.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*models.Task
	// insertion order, so unsorted lists stay deterministic
	order []uuid.UUID
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[uuid.UUID]*models.Task),
	}
}

func (r *TaskRepository) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	r.tasks[task.ID] = &stored
	r.order = append(r.order, task.ID)
	return nil
}

func (r *TaskRepository) GetByIDForUser(_ context.Context, id, userID uuid.UUID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *TaskRepository) ListByUser(_ context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	r.mu.RLock()
	matched := r.collect(userID, func(task *models.Task) bool {
		if filter.Priority != nil && task.Priority != *filter.Priority {
			return false
		}
		if filter.Status != "" && task.Status != filter.Status {
			return false
		}
		return true
	})
	r.mu.RUnlock()

	if filter.SortBy != "" {
		sortTasks(matched, filter.SortBy, strings.EqualFold(filter.Order, "desc"))
	}

	if filter.Offset >= len(matched) {
		return []*models.Task{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *TaskRepository) ListAllByUser(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(userID, func(*models.Task) bool { return true }), nil
}

func (r *TaskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *task
	r.tasks[task.ID] = &stored
	return nil
}

func (r *TaskRepository) DeleteForUser(_ context.Context, id, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return 0, nil
	}
	r.remove(id)
	return 1, nil
}

func (r *TaskRepository) DeleteManyForUser(_ context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		task, ok := r.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		r.remove(id)
		deleted++
	}
	return deleted, nil
}

func (r *TaskRepository) CountOverduePending(_ context.Context, now time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, task := range r.tasks {
		if task.Status == models.StatusPending && task.EndTime.Before(now) {
			count++
		}
	}
	return count, nil
}

// collect returns copies of the user's tasks in insertion order. Callers must
// hold at least a read lock.
func (r *TaskRepository) collect(userID uuid.UUID, keep func(*models.Task) bool) []*models.Task {
	matched := []*models.Task{}
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if !ok || task.UserID != userID || !keep(task) {
			continue
		}
		copied := *task
		matched = append(matched, &copied)
	}
	return matched
}

// remove drops a task from both the map and the insertion-order slice. Callers
// must hold the write lock.
func (r *TaskRepository) remove(id uuid.UUID) {
	delete(r.tasks, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func sortTasks(tasks []*models.Task, column string, desc bool) {
	less := func(a, b *models.Task) bool {
		switch column {
		case "title":
			return a.Title < b.Title
		case "start_time":
			return a.StartTime.Before(b.StartTime)
		case "end_time":
			return a.EndTime.Before(b.EndTime)
		case "priority":
			return a.Priority < b.Priority
		case "status":
			return a.Status < b.Status
		default:
			return false
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}
