package schedule

import (
	"testing"
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

// 2024-06-10 is a Monday
var monday = time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)

func simpleSettings(days ...constants.Weekday) model.ScheduleSettings {
	s := model.DefaultScheduleSettings()
	s.ScheduleMode = constants.ScheduleModeSimple
	s.WorkDays = days
	s.WorkStart = "08:00"
	s.WorkEnd = "16:00"
	return s
}

func TestMaterializeCancelsOverlappingOrdinaryTasks(t *testing.T) {
	pending := model.Task{
		ID:        "t1",
		Title:     "dentist",
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeInterval,
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    constants.StatusPending,
	}
	evening := model.Task{
		ID:        "t2",
		Title:     "gym",
		DueDate:   "2024-06-10",
		TimeMode:  constants.TimeModeInterval,
		StartTime: "18:00",
		EndTime:   "19:00",
		Status:    constants.StatusPending,
	}

	plan := Materialize([]model.Task{pending, evening}, simpleSettings(constants.Mon, constants.Wed), monday)

	if plan.CanceledCount() != 1 {
		t.Fatalf("canceled count = %d, want 1", plan.CanceledCount())
	}
	if plan.CancelIDs[0] != "t1" {
		t.Errorf("canceled %s, want t1", plan.CancelIDs[0])
	}

	var mondayBlock *model.Task
	for i := range plan.Creates {
		if plan.Creates[i].DueDate == "2024-06-10" {
			mondayBlock = &plan.Creates[i]
		}
	}
	if mondayBlock == nil {
		t.Fatal("no recurring block created for the Monday")
	}
	if mondayBlock.StartTime != "08:00" || mondayBlock.EndTime != "16:00" {
		t.Errorf("block hours %s-%s, want 08:00-16:00", mondayBlock.StartTime, mondayBlock.EndTime)
	}
	if mondayBlock.Kind != constants.KindRecurring || !mondayBlock.IsAuto {
		t.Error("created block must be marked recurring and auto-generated")
	}
	if mondayBlock.Importance != constants.ImportanceHigh {
		t.Errorf("block importance = %s, want high", mondayBlock.Importance)
	}
}

func TestMaterializeSkipsClosedAndRecurringTasks(t *testing.T) {
	closed := model.Task{
		ID: "c", DueDate: "2024-06-10",
		TimeMode: constants.TimeModeInterval, StartTime: "10:00", EndTime: "11:00",
		Status: constants.StatusCompleted,
	}
	block := model.Task{
		ID: "w", DueDate: "2024-06-10",
		TimeMode: constants.TimeModeInterval, StartTime: "08:00", EndTime: "16:00",
		Status: constants.StatusPending, Kind: constants.KindRecurring,
	}

	plan := Materialize([]model.Task{closed, block}, simpleSettings(constants.Mon), monday)

	if plan.CanceledCount() != 0 {
		t.Errorf("canceled count = %d, want 0", plan.CanceledCount())
	}
}

func TestMaterializeUpsertsExistingBlockInPlace(t *testing.T) {
	existing := model.Task{
		ID:      "w",
		Title:   "Work",
		DueDate: "2024-06-10",
		Status:  constants.StatusWork, // legacy marker
	}

	settings := simpleSettings(constants.Mon)
	settings.WorkLabel = "University"

	plan := Materialize([]model.Task{existing}, settings, monday)

	for _, c := range plan.Creates {
		if c.DueDate == "2024-06-10" {
			t.Fatal("date with an existing block must be updated, not duplicated")
		}
	}

	var update *RecurringUpdate
	for i := range plan.Updates {
		if plan.Updates[i].ID == "w" {
			update = &plan.Updates[i]
		}
	}
	if update == nil {
		t.Fatal("existing block was not updated")
	}
	if update.Title != "University" {
		t.Errorf("updated title = %s, want University", update.Title)
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	settings := simpleSettings(constants.Mon, constants.Wed)

	task := model.Task{
		ID: "t1", Title: "dentist", DueDate: "2024-06-10",
		TimeMode: constants.TimeModeInterval, StartTime: "10:00", EndTime: "11:00",
		Status: constants.StatusPending,
	}

	first := Materialize([]model.Task{task}, settings, monday)

	// apply the first plan in memory
	state := []model.Task{task}
	for i := range state {
		for _, id := range first.CancelIDs {
			if state[i].ID == id {
				state[i].Status = constants.StatusCanceled
			}
		}
	}
	for i, c := range first.Creates {
		c.ID = string(rune('A' + i))
		state = append(state, c)
	}

	second := Materialize(state, settings, monday)

	if second.CanceledCount() != 0 {
		t.Errorf("second run canceled %d tasks, want 0", second.CanceledCount())
	}
	if len(second.Creates) != 0 {
		t.Errorf("second run created %d new records, want 0", len(second.Creates))
	}
	if len(second.Updates) != len(first.Creates) {
		t.Errorf("second run updated %d blocks, want %d", len(second.Updates), len(first.Creates))
	}
}

func TestMaterializeWindowCoversTodayPlusThirtyDays(t *testing.T) {
	all := simpleSettings(constants.Weekdays...)

	plan := Materialize(nil, all, monday)

	if len(plan.Creates) != DaysAhead+1 {
		t.Errorf("created %d blocks, want %d", len(plan.Creates), DaysAhead+1)
	}
	if plan.Creates[0].DueDate != "2024-06-10" {
		t.Errorf("window starts at %s, want today", plan.Creates[0].DueDate)
	}
	if last := plan.Creates[len(plan.Creates)-1].DueDate; last != "2024-07-10" {
		t.Errorf("window ends at %s, want 2024-07-10", last)
	}
}

func TestMaterializeCustomMode(t *testing.T) {
	s := model.DefaultScheduleSettings()
	s.ScheduleMode = constants.ScheduleModeCustom
	s.PerDay = model.EmptyPerDaySchedule()
	s.PerDay[constants.Tue] = model.DaySchedule{Enabled: true, Start: "09:00", End: "12:00"}

	plan := Materialize(nil, s, monday)

	if len(plan.Creates) == 0 {
		t.Fatal("enabled weekday produced no blocks")
	}
	for _, c := range plan.Creates {
		day, err := time.Parse("2006-01-02", c.DueDate)
		if err != nil {
			t.Fatalf("bad block date %q", c.DueDate)
		}
		if day.Weekday() != time.Tuesday {
			t.Errorf("block on %s (%s), want Tuesdays only", c.DueDate, day.Weekday())
		}
		if c.StartTime != "09:00" || c.EndTime != "12:00" {
			t.Errorf("block hours %s-%s, want 09:00-12:00", c.StartTime, c.EndTime)
		}
	}
}

func TestMaterializeDisabledDaysProduceNothing(t *testing.T) {
	plan := Materialize(nil, simpleSettings(), monday)

	if len(plan.Creates) != 0 || len(plan.Updates) != 0 || plan.CanceledCount() != 0 {
		t.Error("empty weekday selection must produce an empty plan")
	}
}
