// Package settings persists per-user schedule settings and loads the
// optional defaults file.
package settings

import (
	"context"

	model "task-planner.com/task-planner/internal/models"
)

// Store holds one schedule-settings document per user.
type Store interface {
	// Load returns the user's settings. found is false when the user
	// has never saved any.
	Load(ctx context.Context, userID string) (settings model.ScheduleSettings, found bool, err error)

	Save(ctx context.Context, userID string, settings model.ScheduleSettings) error
}
