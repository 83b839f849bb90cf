package validators

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-planner.com/task-planner/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.DueDate != nil {
		if _, err := time.Parse("2006-01-02", *r.DueDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_date must be a valid YYYY-MM-DD date")
		}
	}
	if r.Status != nil {
		switch *r.Status {
		case "Pending", "Completed", "Canceled":
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "status must be Pending, Completed or Canceled")
		}
	}
	return nil
}
