package model

import (
	"time"

	"task-planner.com/task-planner/internal/constants"
)

// Task is a single planner entry, either user-created or generated by
// the recurring-schedule materializer. DueDate is a plain YYYY-MM-DD
// calendar date and StartTime/EndTime are HH:MM wall-clock strings; no
// time-zone conversion is applied to either.
type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	UserID      string               `gorm:"size:64;index;not null" json:"user_id"`
	Title       string               `gorm:"not null" json:"title"`
	DueDate     string               `gorm:"size:10;index" json:"due_date"`
	Importance  constants.Importance `gorm:"type:varchar(10)" json:"importance"`
	TimeMode    constants.TimeMode   `gorm:"type:varchar(10)" json:"time_mode"`
	StartTime   string               `gorm:"size:5" json:"start_time,omitempty"`
	EndTime     string               `gorm:"size:5" json:"end_time,omitempty"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Kind        constants.TaskKind   `gorm:"type:varchar(10);index" json:"kind"`
	Type        string               `gorm:"size:20" json:"type,omitempty"`
	IsAuto      bool                 `json:"is_auto"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
