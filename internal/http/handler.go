package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	"task-planner.com/task-planner/internal/http/validators"
	"task-planner.com/task-planner/internal/services"
)

// userHeader scopes every request to one user's records. Session
// handling lives outside this service.
const userHeader = "X-User-ID"

const defaultUser = "default"

type Handler struct {
	taskService     *services.TaskService
	scheduleService *services.ScheduleService
}

func NewHandler(taskService *services.TaskService, scheduleService *services.ScheduleService) *Handler {
	return &Handler{
		taskService:     taskService,
		scheduleService: scheduleService,
	}
}

func userID(c echo.Context) string {
	if id := c.Request().Header.Get(userHeader); id != "" {
		return id
	}
	return defaultUser
}

func toHTTPError(err error, fallback string) *echo.HTTPError {
	if apperrors.IsClientFault(err) {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), userID(c), req)
	if err != nil {
		return toHTTPError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	view, err := h.taskService.Get(c.Request().Context(), userID(c), id)
	if err != nil {
		return toHTTPError(err, "failed to load task")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *Handler) ListTasks(c echo.Context) error {
	views, err := h.taskService.List(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(views),
		"tasks": views,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), userID(c), id, req)
	if err != nil {
		return toHTTPError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) RescheduleTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.DueDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "due_date is required")
	}

	task, err := h.taskService.Reschedule(c.Request().Context(), userID(c), id, req.DueDate)
	if err != nil {
		return toHTTPError(err, "failed to reschedule task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := h.taskService.Delete(c.Request().Context(), userID(c), id); err != nil {
		return toHTTPError(err, "failed to delete task")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteRecurringTasks(c echo.Context) error {
	deleted, err := h.taskService.DeleteRecurring(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err, "failed to delete recurring tasks")
	}

	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

func (h *Handler) GetSettings(c echo.Context) error {
	cfg, err := h.scheduleService.Settings(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err, "failed to load settings")
	}

	return c.JSON(http.StatusOK, cfg)
}

func (h *Handler) SaveSettings(c echo.Context) error {
	var cfg model.ScheduleSettings
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.scheduleService.SaveSettings(c.Request().Context(), userID(c), cfg); err != nil {
		return toHTTPError(err, "failed to save settings")
	}

	return c.JSON(http.StatusOK, cfg)
}

// MaterializeSchedule is the save-schedule action: it upserts the
// recurring block across the 30-day window and reports how many
// ordinary tasks were auto-cancelled. Partial batch failures keep the
// writes that succeeded; rerunning the action is idempotent.
func (h *Handler) MaterializeSchedule(c echo.Context) error {
	canceled, err := h.scheduleService.MaterializeSchedule(c.Request().Context(), userID(c))
	if err != nil {
		if apperrors.IsClientFault(err) {
			return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, "schedule partially applied; retry to complete")
	}

	return c.JSON(http.StatusOK, echo.Map{"canceled_count": canceled})
}

func (h *Handler) Dashboard(c echo.Context) error {
	dashboard, err := h.taskService.Dashboard(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err, "failed to compute dashboard")
	}

	return c.JSON(http.StatusOK, dashboard)
}
