package services

import (
	"context"
	"time"

	"task-planner.com/task-planner/internal/constants"
	dto "task-planner.com/task-planner/internal/data_models"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	repository "task-planner.com/task-planner/internal/repositories"
	"task-planner.com/task-planner/internal/schedule"
	"task-planner.com/task-planner/internal/stats"
)

// TaskService owns the write boundary for ordinary tasks: every create
// and time edit is validated and conflict-checked before anything is
// persisted, so no two open tasks ever commit with overlapping
// intervals on the same day.
type TaskService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// TaskView pairs a stored record with its freshly derived status.
type TaskView struct {
	model.Task
	DerivedStatus constants.DerivedStatus `json:"derived_status"`
}

func (s *TaskService) Create(ctx context.Context, userID string, req dto.CreateTaskRequest) (*model.Task, error) {
	task := model.Task{
		UserID:     userID,
		Title:      req.Title,
		DueDate:    req.DueDate,
		Importance: constants.Importance(req.Importance),
		TimeMode:   constants.TimeMode(req.TimeMode),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     constants.TaskStatus(req.Status),
		Kind:       constants.KindOrdinary,
	}

	if task.Importance == "" {
		task.Importance = constants.ImportanceLow
	}
	if task.Status == "" {
		task.Status = constants.StatusPending
	}
	schedule.NormalizeTimeMode(&task)

	if err := validateTaskTimes(task); err != nil {
		return nil, err
	}

	if err := s.rejectOverlap(ctx, userID, task, ""); err != nil {
		return nil, err
	}

	if task.Status == constants.StatusCompleted {
		now := s.now().UTC()
		task.CompletedAt = &now
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if schedule.IsRecurring(*task) && !completionOnly(req) {
		return nil, apperrors.ErrRecurringTaskEdit
	}

	merged := *task
	fields := map[string]interface{}{}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperrors.NewValidation("title must not be empty")
		}
		merged.Title = *req.Title
		fields["title"] = merged.Title
	}
	if req.DueDate != nil {
		merged.DueDate = *req.DueDate
		fields["due_date"] = merged.DueDate
	}
	if req.Importance != nil {
		merged.Importance = constants.Importance(*req.Importance)
		if !constants.ValidImportance(merged.Importance) {
			return nil, apperrors.NewValidation("importance must be low, medium or high")
		}
		fields["importance"] = merged.Importance
	}
	if req.TimeMode != nil {
		merged.TimeMode = constants.TimeMode(*req.TimeMode)
		fields["time_mode"] = merged.TimeMode
	}
	if req.StartTime != nil {
		merged.StartTime = *req.StartTime
		fields["start_time"] = merged.StartTime
	}
	if req.EndTime != nil {
		merged.EndTime = *req.EndTime
		fields["end_time"] = merged.EndTime
	}
	if req.Status != nil {
		merged.Status = constants.TaskStatus(*req.Status)
		fields["status"] = merged.Status

		// completed_at tracks the Completed status exactly
		if merged.Status == constants.StatusCompleted {
			now := s.now().UTC()
			merged.CompletedAt = &now
		} else {
			merged.CompletedAt = nil
		}
		fields["completed_at"] = merged.CompletedAt
	}

	if len(fields) == 0 {
		return task, nil
	}

	if timeFieldsTouched(req) {
		if err := validateTaskTimes(merged); err != nil {
			return nil, err
		}
		if err := s.rejectOverlap(ctx, userID, merged, id); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, userID, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

// Reschedule revives a canceled or overdue task onto a new date:
// status back to Pending, completion cleared. The new slot is
// conflict-checked like any other time edit.
func (s *TaskService) Reschedule(ctx context.Context, userID, id, newDate string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if schedule.IsRecurring(*task) {
		return nil, apperrors.ErrRecurringTaskEdit
	}
	if _, parseErr := time.Parse("2006-01-02", newDate); parseErr != nil {
		return nil, apperrors.NewValidation("due date must be a valid YYYY-MM-DD date")
	}

	merged := *task
	merged.DueDate = newDate
	merged.Status = constants.StatusPending
	merged.CompletedAt = nil

	if err := s.rejectOverlap(ctx, userID, merged, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"due_date":     newDate,
		"status":       constants.StatusPending,
		"completed_at": nil,
	}
	if err := s.repo.Update(ctx, userID, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *TaskService) Get(ctx context.Context, userID, id string) (*TaskView, error) {
	task, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &TaskView{Task: *task, DerivedStatus: schedule.DeriveStatus(*task, s.now())}, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]TaskView, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, TaskView{Task: t, DerivedStatus: schedule.DeriveStatus(t, now)})
	}
	return views, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *TaskService) DeleteRecurring(ctx context.Context, userID string) (int64, error) {
	return s.repo.DeleteRecurring(ctx, userID)
}

// Dashboard computes the aggregation payload over the user's task set.
func (s *TaskService) Dashboard(ctx context.Context, userID string) (stats.Dashboard, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return stats.Dashboard{}, err
	}
	return stats.Compute(tasks, s.now()), nil
}

// rejectOverlap refuses the write when the task's interval intersects
// an open task on the same day. Tasks without a time carry no interval
// and always pass.
func (s *TaskService) rejectOverlap(ctx context.Context, userID string, task model.Task, excludeID string) error {
	candidate, ok := schedule.TaskInterval(task)
	if !ok {
		return nil
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	if conflict := schedule.FindOverlap(existing, candidate, excludeID); conflict != nil {
		return apperrors.NewScheduleConflict(conflict.Title)
	}
	return nil
}

// validateTaskTimes checks the stored time fields against the time
// mode before any write commits.
func validateTaskTimes(t model.Task) error {
	switch t.TimeMode {
	case constants.TimeModeNone, "":
		return nil
	case constants.TimeModeSingle:
		if _, ok := schedule.TimeToMinutes(t.StartTime); !ok {
			return apperrors.NewValidation("start time must be a valid HH:MM time")
		}
	case constants.TimeModeInterval:
		start, ok := schedule.TimeToMinutes(t.StartTime)
		if !ok {
			return apperrors.NewValidation("start time must be a valid HH:MM time")
		}
		end, ok := schedule.TimeToMinutes(t.EndTime)
		if !ok {
			return apperrors.NewValidation("end time must be a valid HH:MM time")
		}
		if end <= start {
			return apperrors.NewValidation("end time must be after start time")
		}
	default:
		return apperrors.NewValidation("time mode must be none, single or interval")
	}
	return nil
}

// completionOnly reports whether a patch does nothing except mark the
// task completed, the one edit recurring tasks accept.
func completionOnly(req dto.UpdateTaskRequest) bool {
	if req.Status == nil || constants.TaskStatus(*req.Status) != constants.StatusCompleted {
		return false
	}
	return req.Title == nil && req.DueDate == nil && req.Importance == nil &&
		req.TimeMode == nil && req.StartTime == nil && req.EndTime == nil
}

func timeFieldsTouched(req dto.UpdateTaskRequest) bool {
	return req.DueDate != nil || req.TimeMode != nil || req.StartTime != nil || req.EndTime != nil
}
