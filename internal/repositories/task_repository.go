package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-planner.com/task-planner/internal/constants"
	apperrors "task-planner.com/task-planner/internal/errors"
	model "task-planner.com/task-planner/internal/models"
	"task-planner.com/task-planner/internal/schedule"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create persists a new task record, assigning the id and creation
// timestamp. The caller fills in every domain field.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	schedule.Normalize(&task)
	return &task, nil
}

// ListByUser returns the user's full task set, normalized to the
// current schema on the way out.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		schedule.Normalize(&tasks[i])
	}
	return tasks, nil
}

// Update applies a merge patch to one record. Callers always pass the
// complete field set for the fields they change.
func (r *TaskRepository) Update(ctx context.Context, userID, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

// DeleteRecurring removes every recurring-schedule task for the user,
// matching any of the historical recurring markers.
func (r *TaskRepository) DeleteRecurring(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND (kind = ? OR status = ? OR type = ?)",
			userID, constants.KindRecurring, constants.StatusWork, constants.LegacyWorkType).
		Delete(&model.Task{})

	return res.RowsAffected, res.Error
}
