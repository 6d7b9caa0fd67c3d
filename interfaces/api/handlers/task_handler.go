package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tasktracker/domain/dto"
	"tasktracker/domain/services"
	"tasktracker/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns the caller's tasks, filtered, sorted and paginated by the
// query string.
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	query, err := parseTaskListQuery(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters", err.Error())
	}

	tasks, err := h.taskService.ListTasks(c.Context(), user.ID, query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSortField) {
			return utils.BadRequestResponse(c, "Invalid sort field", query.SortBy)
		}
		return utils.InternalServerErrorResponse(c, "Error fetching tasks", err.Error())
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

// CreateTask creates a task owned by the caller.
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.CreateTask(c.Context(), user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimeWindow) {
			return utils.BadRequestResponse(c, "Start time must be before end time", nil)
		}
		return utils.BadRequestResponse(c, "Error creating task", err.Error())
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// UpdateTask applies the fields present in the body to one of the caller's
// tasks.
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID", c.Params("id"))
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.UpdateTask(c.Context(), user.ID, taskID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "Task not found")
		case errors.Is(err, services.ErrInvalidTimeWindow):
			return utils.BadRequestResponse(c, "Start time must be before end time", nil)
		default:
			return utils.BadRequestResponse(c, "Error updating task", err.Error())
		}
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

// DeleteTask removes a single task owned by the caller.
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID", c.Params("id"))
	}

	if err := h.taskService.DeleteTask(c.Context(), user.ID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}
		return utils.BadRequestResponse(c, "Error deleting task", err.Error())
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Task deleted successfully")
}

// DeleteTasks removes every listed task the caller owns.
func (h *TaskHandler) DeleteTasks(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	var req dto.DeleteTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body", err.Error())
	}

	if _, err := h.taskService.DeleteTasks(c.Context(), user.ID, req.IDs); err != nil {
		switch {
		case errors.Is(err, services.ErrNoTaskIDs):
			return utils.BadRequestResponse(c, "No task IDs provided", nil)
		case errors.Is(err, services.ErrTaskNotFound):
			return utils.NotFoundResponse(c, "No tasks found for deletion")
		default:
			return utils.BadRequestResponse(c, "Error deleting tasks", err.Error())
		}
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Tasks deleted successfully")
}

// TaskSummary reports aggregate progress across the caller's tasks.
func (h *TaskHandler) TaskSummary(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Unauthorized, token is required")
	}

	summary, err := h.taskService.TaskSummary(c.Context(), user.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Error building task summary", err.Error())
	}

	return utils.SuccessResponse(c, summary)
}

func parseTaskListQuery(c *fiber.Ctx) (*dto.TaskListQuery, error) {
	query := &dto.TaskListQuery{
		Status: c.Query("status"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	if raw := c.Query("priority"); raw != "" {
		priority, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("priority must be an integer")
		}
		query.Priority = &priority
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("page must be an integer")
		}
		query.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("limit must be an integer")
		}
		query.Limit = limit
	}

	return query, nil
}
