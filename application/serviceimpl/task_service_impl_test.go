package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/domain/dto"
	"tasktracker/domain/models"
	"tasktracker/domain/services"
	"tasktracker/infrastructure/memory"
)

func flexTime(t time.Time) *dto.FlexTime {
	return &dto.FlexTime{Time: t}
}

func createRequest(title string, priority int, status string, start, end time.Time) *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Title:     title,
		StartTime: flexTime(start),
		EndTime:   flexTime(end),
		Priority:  priority,
		Status:    status,
	}
}

func mustCreate(t *testing.T, service services.TaskService, userID uuid.UUID, req *dto.CreateTaskRequest) *models.Task {
	t.Helper()
	task, err := service.CreateTask(context.Background(), userID, req)
	require.NoError(t, err)
	return task
}

func TestCreateTask(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	start := time.Now().Add(time.Hour)
	end := start.Add(2 * time.Hour)
	task := mustCreate(t, service, userID, createRequest("Write report", 2, models.StatusPending, start, end))

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, 2, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, userID, task.UserID)
}

func TestCreateTaskRejectsInvertedWindow(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)

	start := time.Now()
	_, err := service.CreateTask(context.Background(), uuid.New(),
		createRequest("Backwards", 1, models.StatusPending, start, start.Add(-time.Hour)))
	assert.ErrorIs(t, err, services.ErrInvalidTimeWindow)

	// Equal start and end is also rejected.
	_, err = service.CreateTask(context.Background(), uuid.New(),
		createRequest("Instant", 1, models.StatusPending, start, start))
	assert.ErrorIs(t, err, services.ErrInvalidTimeWindow)
}

func TestListTasksScopedToOwner(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	alice := uuid.New()
	bob := uuid.New()

	start := time.Now()
	mustCreate(t, service, alice, createRequest("Alice task", 1, models.StatusPending, start, start.Add(time.Hour)))
	mustCreate(t, service, bob, createRequest("Bob task", 1, models.StatusPending, start, start.Add(time.Hour)))

	tasks, err := service.ListTasks(context.Background(), alice, &dto.TaskListQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Alice task", tasks[0].Title)
}

func TestListTasksFilters(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	start := time.Now()
	mustCreate(t, service, userID, createRequest("p1 pending", 1, models.StatusPending, start, start.Add(time.Hour)))
	mustCreate(t, service, userID, createRequest("p2 pending", 2, models.StatusPending, start, start.Add(time.Hour)))
	mustCreate(t, service, userID, createRequest("p2 finished", 2, models.StatusFinished, start, start.Add(time.Hour)))

	priority := 2
	tasks, err := service.ListTasks(context.Background(), userID, &dto.TaskListQuery{Priority: &priority})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{Status: models.StatusFinished})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "p2 finished", tasks[0].Title)

	// Filters combine with AND.
	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{
		Priority: &priority,
		Status:   models.StatusPending,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "p2 pending", tasks[0].Title)
}

func TestListTasksSort(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	base := time.Now()
	mustCreate(t, service, userID, createRequest("Later", 1, models.StatusPending, base.Add(2*time.Hour), base.Add(3*time.Hour)))
	mustCreate(t, service, userID, createRequest("Earlier", 1, models.StatusPending, base, base.Add(time.Hour)))

	tasks, err := service.ListTasks(context.Background(), userID, &dto.TaskListQuery{SortBy: "startTime"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Earlier", tasks[0].Title)

	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{SortBy: "startTime", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Later", tasks[0].Title)
}

func TestListTasksInvalidSortField(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)

	_, err := service.ListTasks(context.Background(), uuid.New(), &dto.TaskListQuery{SortBy: "id; drop table tasks"})
	assert.ErrorIs(t, err, services.ErrInvalidSortField)
}

func TestListTasksPagination(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	base := time.Now()
	for i := 0; i < 12; i++ {
		mustCreate(t, service, userID, createRequest("Task", 1, models.StatusPending,
			base.Add(time.Duration(i)*time.Minute), base.Add(time.Duration(i+1)*time.Minute)))
	}

	// Default page size is 10.
	tasks, err := service.ListTasks(context.Background(), userID, &dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, tasks, 5)

	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	// Past the end of the collection.
	tasks, err = service.ListTasks(context.Background(), userID, &dto.TaskListQuery{Page: 9, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTaskSparse(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	start := time.Now()
	task := mustCreate(t, service, userID, createRequest("Original", 3, models.StatusPending, start, start.Add(time.Hour)))

	status := models.StatusFinished
	updated, err := service.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusFinished, updated.Status)
	// Untouched fields survive a sparse update.
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, 3, updated.Priority)
}

func TestUpdateTaskRejectsInvertedWindow(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	start := time.Now()
	task := mustCreate(t, service, userID, createRequest("Windowed", 1, models.StatusPending, start, start.Add(time.Hour)))

	_, err := service.UpdateTask(context.Background(), userID, task.ID, &dto.UpdateTaskRequest{
		EndTime: flexTime(start.Add(-time.Hour)),
	})
	assert.ErrorIs(t, err, services.ErrInvalidTimeWindow)
}

func TestUpdateTaskOwnership(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	alice := uuid.New()
	bob := uuid.New()

	start := time.Now()
	task := mustCreate(t, service, alice, createRequest("Alice task", 1, models.StatusPending, start, start.Add(time.Hour)))

	title := "Hijacked"
	_, err := service.UpdateTask(context.Background(), bob, task.ID, &dto.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	start := time.Now()
	task := mustCreate(t, service, userID, createRequest("Doomed", 1, models.StatusPending, start, start.Add(time.Hour)))

	require.NoError(t, service.DeleteTask(context.Background(), userID, task.ID))

	err := service.DeleteTask(context.Background(), userID, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestDeleteTaskOwnership(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	alice := uuid.New()
	bob := uuid.New()

	start := time.Now()
	task := mustCreate(t, service, alice, createRequest("Alice task", 1, models.StatusPending, start, start.Add(time.Hour)))

	err := service.DeleteTask(context.Background(), bob, task.ID)
	assert.ErrorIs(t, err, services.ErrTaskNotFound)

	tasks, err := service.ListTasks(context.Background(), alice, &dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeleteTasks(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	alice := uuid.New()
	bob := uuid.New()

	start := time.Now()
	first := mustCreate(t, service, alice, createRequest("First", 1, models.StatusPending, start, start.Add(time.Hour)))
	second := mustCreate(t, service, alice, createRequest("Second", 1, models.StatusPending, start, start.Add(time.Hour)))
	theirs := mustCreate(t, service, bob, createRequest("Bob task", 1, models.StatusPending, start, start.Add(time.Hour)))

	// Foreign ids are skipped, not reported.
	deleted, err := service.DeleteTasks(context.Background(), alice, []uuid.UUID{first.ID, second.ID, theirs.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	tasks, err := service.ListTasks(context.Background(), bob, &dto.TaskListQuery{})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeleteTasksEmpty(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)

	_, err := service.DeleteTasks(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, services.ErrNoTaskIDs)
}

func TestDeleteTasksNoneMatched(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)

	_, err := service.DeleteTasks(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	assert.ErrorIs(t, err, services.ErrTaskNotFound)
}

func TestTaskSummary(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)
	userID := uuid.New()

	now := time.Now()
	mustCreate(t, service, userID, createRequest("Running", 1, models.StatusPending, now.Add(-2*time.Hour), now.Add(2*time.Hour)))
	mustCreate(t, service, userID, createRequest("Overdue", 1, models.StatusPending, now.Add(-4*time.Hour), now.Add(-time.Hour)))
	mustCreate(t, service, userID, createRequest("Done", 3, models.StatusFinished, now.Add(-3*time.Hour), now.Add(-2*time.Hour)))

	summary, err := service.TaskSummary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalTasks)
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 1, summary.FinishedCount)
	assert.InDelta(t, 66.67, summary.PendingPercentage, 0.01)
	assert.InDelta(t, 33.33, summary.FinishedPercentage, 0.01)

	require.Len(t, summary.Priorities, 2)
	assert.Equal(t, 1, summary.Priorities[0].Priority)
	assert.Equal(t, 2, summary.Priorities[0].TaskCount)
	assert.Equal(t, 2, summary.Priorities[0].PendingCount)
	assert.Equal(t, 3, summary.Priorities[1].Priority)

	// Time left never goes negative, even for overdue tasks.
	assert.InDelta(t, 2, summary.Priorities[0].TimeLeftHours, 0.01)
	assert.InDelta(t, 0, summary.Priorities[1].TimeLeftHours, 0.01)
}

func TestTaskSummaryEmpty(t *testing.T) {
	service := NewTaskService(memory.NewTaskRepository(), nil)

	summary, err := service.TaskSummary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalTasks)
	assert.Zero(t, summary.PendingPercentage)
	assert.Zero(t, summary.FinishedPercentage)
	assert.Empty(t, summary.Priorities)
}
