package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"task-planner.com/task-planner/internal/constants"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	repository "task-planner.com/task-planner/internal/repositories"
	"task-planner.com/task-planner/internal/schedule"
	"task-planner.com/task-planner/internal/settings"
)

// ScheduleService owns the recurring-schedule settings and the
// save-schedule action that materializes them into task records.
type ScheduleService struct {
	repo     *repository.TaskRepository
	store    settings.Store
	defaults model.ScheduleSettings
	now      func() time.Time
}

func NewScheduleService(repo *repository.TaskRepository, store settings.Store, defaults model.ScheduleSettings) *ScheduleService {
	return &ScheduleService{
		repo:     repo,
		store:    store,
		defaults: defaults,
		now:      time.Now,
	}
}

// Settings returns the user's saved settings, or the configured
// defaults for users who never saved any.
func (s *ScheduleService) Settings(ctx context.Context, userID string) (model.ScheduleSettings, error) {
	saved, found, err := s.store.Load(ctx, userID)
	if err != nil {
		return model.ScheduleSettings{}, err
	}
	if !found {
		return s.defaults, nil
	}
	if saved.PerDay == nil {
		saved.PerDay = model.EmptyPerDaySchedule()
	}
	return saved, nil
}

func (s *ScheduleService) SaveSettings(ctx context.Context, userID string, cfg model.ScheduleSettings) error {
	if err := validateSettings(cfg); err != nil {
		return err
	}
	return s.store.Save(ctx, userID, cfg)
}

// MaterializeSchedule runs the engine over the user's current task set
// and applies the resulting write-set. The per-date writes are applied
// across the whole window even when some fail; failures are joined and
// reported after the batch, and a rerun self-heals because the upsert
// keys off date plus recurring marker.
func (s *ScheduleService) MaterializeSchedule(ctx context.Context, userID string) (int, error) {
	cfg, err := s.Settings(ctx, userID)
	if err != nil {
		return 0, err
	}

	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	plan := schedule.Materialize(tasks, cfg, s.now())

	var failures []error

	for _, id := range plan.CancelIDs {
		fields := map[string]interface{}{
			"status":       constants.StatusCanceled,
			"completed_at": nil,
		}
		if err := s.repo.Update(ctx, userID, id, fields); err != nil {
			log.Printf("materialize: cancel task %s: %v", id, err)
			failures = append(failures, fmt.Errorf("cancel task %s: %w", id, err))
		}
	}

	for _, u := range plan.Updates {
		fields := map[string]interface{}{
			"title":        u.Title,
			"start_time":   u.StartTime,
			"end_time":     u.EndTime,
			"time_mode":    constants.TimeModeInterval,
			"status":       constants.StatusPending,
			"kind":         constants.KindRecurring,
			"importance":   constants.ImportanceHigh,
			"is_auto":      true,
			"completed_at": nil,
		}
		if err := s.repo.Update(ctx, userID, u.ID, fields); err != nil {
			log.Printf("materialize: update recurring task %s: %v", u.ID, err)
			failures = append(failures, fmt.Errorf("update recurring task %s: %w", u.ID, err))
		}
	}

	for _, create := range plan.Creates {
		task := create
		task.UserID = userID
		if err := s.repo.Create(ctx, &task); err != nil {
			log.Printf("materialize: create recurring task on %s: %v", task.DueDate, err)
			failures = append(failures, fmt.Errorf("create recurring task on %s: %w", task.DueDate, err))
		}
	}

	return plan.CanceledCount(), errors.Join(failures...)
}

func validateSettings(cfg model.ScheduleSettings) error {
	switch cfg.ScheduleMode {
	case constants.ScheduleModeSimple:
		for _, d := range cfg.WorkDays {
			if !constants.ValidWeekday(d) {
				return apperrors.NewValidation(fmt.Sprintf("unknown weekday %q", d))
			}
		}
		if len(cfg.WorkDays) == 0 {
			return nil
		}
		return validateBlock(cfg.WorkStart, cfg.WorkEnd)
	case constants.ScheduleModeCustom:
		for day, block := range cfg.PerDay {
			if !constants.ValidWeekday(day) {
				return apperrors.NewValidation(fmt.Sprintf("unknown weekday %q", day))
			}
			if !block.Enabled {
				continue
			}
			if err := validateBlock(block.Start, block.End); err != nil {
				return err
			}
		}
		return nil
	default:
		return apperrors.NewValidation("schedule mode must be simple or custom")
	}
}

func validateBlock(start, end string) error {
	startMin, ok := schedule.TimeToMinutes(start)
	if !ok {
		return apperrors.NewValidation("schedule start must be a valid HH:MM time")
	}
	endMin, ok := schedule.TimeToMinutes(end)
	if !ok {
		return apperrors.NewValidation("schedule end must be a valid HH:MM time")
	}
	if endMin <= startMin {
		return apperrors.NewValidation("schedule end must be after schedule start")
	}
	return nil
}
