package schedule

import (
	"testing"
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return parsed
}

func TestDeriveStatusClosedStatusesWin(t *testing.T) {
	now := at(t, "2024-06-10T09:30")

	canceled := model.Task{Status: constants.StatusCanceled, DueDate: "2024-06-01"}
	if got := DeriveStatus(canceled, now); got != constants.DerivedCanceled {
		t.Errorf("canceled task derived %s", got)
	}

	completed := model.Task{Status: constants.StatusCompleted, DueDate: "2099-01-01"}
	if got := DeriveStatus(completed, now); got != constants.DerivedCompleted {
		t.Errorf("completed task derived %s", got)
	}

	done := now.Add(-time.Hour)
	withTimestamp := model.Task{Status: constants.StatusPending, DueDate: "2099-01-01", CompletedAt: &done}
	if got := DeriveStatus(withTimestamp, now); got != constants.DerivedCompleted {
		t.Errorf("task with completion timestamp derived %s", got)
	}
}

func TestDeriveStatusIntervalProgression(t *testing.T) {
	task := model.Task{
		Title:     "meeting",
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeInterval,
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    constants.StatusPending,
	}

	steps := []struct {
		now  string
		want constants.DerivedStatus
	}{
		{"2024-06-09T12:00", constants.DerivedUpcoming},
		{"2024-06-10T08:59", constants.DerivedUpcoming},
		{"2024-06-10T09:30", constants.DerivedInProgress},
		{"2024-06-10T10:30", constants.DerivedOverdue},
		{"2024-06-11T08:00", constants.DerivedOverdue},
	}

	for _, step := range steps {
		if got := DeriveStatus(task, at(t, step.now)); got != step.want {
			t.Errorf("at %s derived %s, want %s", step.now, got, step.want)
		}
	}
}

func TestDeriveStatusSingleTime(t *testing.T) {
	task := model.Task{
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeSingle,
		StartTime: "09:00",
		Status:    constants.StatusPending,
	}

	if got := DeriveStatus(task, at(t, "2024-06-10T08:00")); got != constants.DerivedUpcoming {
		t.Errorf("before the set time derived %s", got)
	}
	if got := DeriveStatus(task, at(t, "2024-06-10T09:05")); got != constants.DerivedOverdue {
		t.Errorf("past the set time derived %s", got)
	}
}

func TestDeriveStatusNoUsableTime(t *testing.T) {
	task := model.Task{DueDate: "2024-06-10", Status: constants.StatusPending}
	if got := DeriveStatus(task, at(t, "2024-06-10T12:00")); got != constants.DerivedInProgress {
		t.Errorf("untimed task on its due day derived %s", got)
	}
}

func TestDeriveStatusInvalidDueDate(t *testing.T) {
	task := model.Task{DueDate: "not-a-date", Status: constants.StatusPending}
	if got := DeriveStatus(task, at(t, "2024-06-10T12:00")); got != constants.DerivedInProgress {
		t.Errorf("pending task without a date derived %s", got)
	}
}

func TestDeriveStatusRecurringLifecycle(t *testing.T) {
	block := model.Task{
		Title:     "Work",
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeInterval,
		StartTime: "08:00",
		EndTime:   "16:00",
		Status:    constants.StatusPending,
		Kind:      constants.KindRecurring,
	}

	if got := DeriveStatus(block, at(t, "2024-06-09T12:00")); got != constants.DerivedUpcoming {
		t.Errorf("future block derived %s", got)
	}
	// recurring blocks resolve as done once their day has passed
	if got := DeriveStatus(block, at(t, "2024-06-11T12:00")); got != constants.DerivedCompleted {
		t.Errorf("past block derived %s", got)
	}
	if got := DeriveStatus(block, at(t, "2024-06-10T07:00")); got != constants.DerivedUpcoming {
		t.Errorf("before hours derived %s", got)
	}
	if got := DeriveStatus(block, at(t, "2024-06-10T12:00")); got != constants.DerivedInProgress {
		t.Errorf("during hours derived %s", got)
	}
	if got := DeriveStatus(block, at(t, "2024-06-10T17:00")); got != constants.DerivedCompleted {
		t.Errorf("after hours derived %s", got)
	}
}

func TestDeriveStatusLegacyWorkMarkers(t *testing.T) {
	now := at(t, "2024-06-10T12:00")

	byStatus := model.Task{DueDate: "2024-06-09", Status: constants.StatusWork}
	if got := DeriveStatus(byStatus, now); got != constants.DerivedCompleted {
		t.Errorf("legacy Work status on a past day derived %s", got)
	}

	byType := model.Task{DueDate: "2024-06-09", Status: constants.StatusPending, Type: constants.LegacyWorkType}
	if got := DeriveStatus(byType, now); got != constants.DerivedCompleted {
		t.Errorf("legacy work type on a past day derived %s", got)
	}
}

func TestDeriveStatusIsPure(t *testing.T) {
	task := model.Task{
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeInterval,
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    constants.StatusPending,
	}
	now := at(t, "2024-06-10T09:30")

	first := DeriveStatus(task, now)
	for i := 0; i < 100; i++ {
		if got := DeriveStatus(task, now); got != first {
			t.Fatalf("call %d derived %s, first call derived %s", i, got, first)
		}
	}
	if first != constants.DerivedInProgress {
		t.Errorf("derived %s, want %s", first, constants.DerivedInProgress)
	}
}
