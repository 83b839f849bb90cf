package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-planner.com/task-planner/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.DueDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "due_date is required")
	}
	if _, err := time.Parse("2006-01-02", r.DueDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "due_date must be a valid YYYY-MM-DD date")
	}
	switch r.Status {
	case "", "Pending", "Completed", "Canceled":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be Pending, Completed or Canceled")
	}
	switch r.Importance {
	case "", "low", "medium", "high":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "importance must be low, medium or high")
	}
	return nil
}
