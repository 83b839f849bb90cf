package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-planner.com/task-planner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.DELETE("/tasks/recurring", h.DeleteRecurringTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.POST("/tasks/:id/reschedule", h.RescheduleTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.GET("/settings", h.GetSettings)
	e.PUT("/settings", h.SaveSettings)
	e.POST("/schedule/materialize", h.MaterializeSchedule)

	e.GET("/stats/dashboard", h.Dashboard)
}
