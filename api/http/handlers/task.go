package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/BuildWithPundalik/Task-Manager-Backend/api/http/presenter"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/security/jwt"
	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/task"
)

type TaskHandler struct {
	useCase    task.UseCase
	production bool
}

func NewTaskHandler(useCase task.UseCase, production bool) *TaskHandler {
	return &TaskHandler{useCase: useCase, production: production}
}

// parseDueDate accepts RFC 3339 timestamps and bare dates.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, apperror.NewValidation("Invalid due date format")
}

func ownerID(c *fiber.Ctx) (uuid.UUID, bool) {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

type createTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending Overdue Completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate" validate:"required"`
}

// Create adds a task owned by the authenticated caller.
// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   input body createTaskRequest true "task payload"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	created, err := h.useCase.Create(c.Context(), owner, task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "Task created successfully",
		"task":    created,
	})
}

// List returns the caller's tasks, optionally filtered by status/priority
// and sorted by a whitelisted field.
// @Summary List tasks
// @Tags    tasks
// @Produce json
// @Param   status    query string false "filter by status"
// @Param   priority  query string false "filter by priority"
// @Param   sortBy    query string false "createdAt|dueDate|priority|title|status"
// @Param   sortOrder query string false "asc|desc"
// @Param   limit     query int    false "page size (max 200)"
// @Param   offset    query int    false "page offset"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	// No default cap: without paging params the full listing is returned,
	// and count always reflects what the body holds.
	limit, offset := parseLimitOffset(c, 0)
	filter := task.ListFilter{
		Status:    task.Status(c.Query("status")),
		Priority:  task.Priority(c.Query("priority")),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
		Limit:     limit,
		Offset:    offset,
	}

	tasks, err := h.useCase.List(c.Context(), owner, filter)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"count":   len(tasks),
		"tasks":   tasks,
	})
}

// GetByID returns one of the caller's tasks. Another user's task id yields
// 404, indistinguishable from a nonexistent one.
// @Summary Get task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid task ID")
	}

	t, err := h.useCase.GetByID(c.Context(), owner, id)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"task":    t,
	})
}

type updateTaskRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,min=10,max=500"`
	Status      string `json:"status" validate:"omitempty,oneof=Pending Overdue Completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate"`
}

// Update applies a partial update; only supplied fields change.
// @Summary Update task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id    path string            true "task id (UUID)"
// @Param   input body updateTaskRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid task ID")
	}
	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := checkRequest(req); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	input := task.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
	}
	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			return presenter.AppError(c, err, h.production)
		}
		input.DueDate = &dueDate
	}

	updated, err := h.useCase.Update(c.Context(), owner, id, input)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Task updated successfully",
		"task":    updated,
	})
}

// Delete removes one of the caller's tasks.
// @Summary Delete task
// @Tags    tasks
// @Produce json
// @Param   id path string true "task id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid task ID")
	}

	if err := h.useCase.Delete(c.Context(), owner, id); err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// Stats aggregates the caller's tasks by status and priority.
// @Summary Task statistics
// @Tags    tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /tasks/stats [get]
func (h *TaskHandler) Stats(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "User not authenticated")
	}

	stats, err := h.useCase.Stats(c.Context(), owner)
	if err != nil {
		return presenter.AppError(c, err, h.production)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
