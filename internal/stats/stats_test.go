package stats

import (
	"testing"
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

var noon = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func completedOn(t time.Time) *time.Time {
	return &t
}

func TestComputeTodayEfficiency(t *testing.T) {
	done := noon.Add(-2 * time.Hour)
	tasks := []model.Task{
		{DueDate: "2024-06-10", Status: constants.StatusCompleted, CompletedAt: completedOn(done)},
		{DueDate: "2024-06-10", Status: constants.StatusPending},
		{DueDate: "2024-06-10", Status: constants.StatusCanceled}, // excluded from the denominator
		{DueDate: "2024-06-11", Status: constants.StatusPending},  // other day
	}

	d := Compute(tasks, noon)

	if d.TodayTotal != 2 {
		t.Errorf("today total = %d, want 2", d.TodayTotal)
	}
	if d.TodayCompleted != 1 {
		t.Errorf("today completed = %d, want 1", d.TodayCompleted)
	}
	if d.TodayEfficiency != 50 {
		t.Errorf("efficiency = %d, want 50", d.TodayEfficiency)
	}
}

func TestComputeBestDayTieGoesToLatest(t *testing.T) {
	d1 := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{DueDate: "2024-06-08", Status: constants.StatusCompleted, CompletedAt: completedOn(d1)},
		{DueDate: "2024-06-09", Status: constants.StatusCompleted, CompletedAt: completedOn(d2)},
	}

	d := Compute(tasks, noon)

	if d.BestAll.Date != "2024-06-09" {
		t.Errorf("best day = %s, want the later of the tied days", d.BestAll.Date)
	}
	if d.BestAll.Count != 1 {
		t.Errorf("best count = %d, want 1", d.BestAll.Count)
	}
}

func TestComputeBestDayRespectsSpan(t *testing.T) {
	old := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{Status: constants.StatusCompleted, CompletedAt: completedOn(old)},
		{Status: constants.StatusCompleted, CompletedAt: completedOn(old.Add(time.Hour))},
		{Status: constants.StatusCompleted, CompletedAt: completedOn(recent)},
	}

	d := Compute(tasks, noon)

	if d.BestAll.Date != "2024-04-01" || d.BestAll.Count != 2 {
		t.Errorf("all-time best = %s (%d), want 2024-04-01 (2)", d.BestAll.Date, d.BestAll.Count)
	}
	if d.Best7.Date != "2024-06-09" {
		t.Errorf("7-day best = %s, want 2024-06-09", d.Best7.Date)
	}
}

func TestComputeAverageCompletionTime(t *testing.T) {
	nine := time.Date(2024, 6, 9, 9, 0, 0, 0, time.UTC)
	eleven := time.Date(2024, 6, 10, 11, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{Status: constants.StatusCompleted, CompletedAt: completedOn(nine)},
		{Status: constants.StatusCompleted, CompletedAt: completedOn(eleven)},
	}

	d := Compute(tasks, noon)

	if d.Avg7.Label != "10:00" {
		t.Errorf("average completion = %s, want 10:00", d.Avg7.Label)
	}
	if d.Avg7.Count != 2 {
		t.Errorf("average sample count = %d, want 2", d.Avg7.Count)
	}
}

func TestComputeAverageCompletionEmptySpan(t *testing.T) {
	d := Compute(nil, noon)
	if d.Avg7.Label != "" || d.Avg7.Count != 0 {
		t.Error("no completions should report an empty average")
	}
}

func TestComputeStreakSkipsEmptyDaysAndBreaksOnPartial(t *testing.T) {
	done9 := time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)
	done7 := time.Date(2024, 6, 7, 18, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		// today: nothing due, skipped
		{DueDate: "2024-06-09", Status: constants.StatusCompleted, CompletedAt: completedOn(done9)},
		// 2024-06-08 has no active tasks, skipped
		{DueDate: "2024-06-08", Status: constants.StatusCanceled},
		{DueDate: "2024-06-07", Status: constants.StatusCompleted, CompletedAt: completedOn(done7)},
		// 2024-06-06 breaks the streak
		{DueDate: "2024-06-06", Status: constants.StatusPending},
	}

	d := Compute(tasks, noon)

	if d.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", d.StreakDays)
	}

	if len(d.StreakDots) != 7 {
		t.Fatalf("streak dots = %d, want 7", len(d.StreakDots))
	}
	byDate := map[string]string{}
	for _, dot := range d.StreakDots {
		byDate[dot.Date] = dot.Type
	}
	if byDate["2024-06-10"] != "empty" {
		t.Errorf("today dot = %s, want empty", byDate["2024-06-10"])
	}
	if byDate["2024-06-09"] != "full" {
		t.Errorf("completed day dot = %s, want full", byDate["2024-06-09"])
	}
	if byDate["2024-06-06"] != "partial" {
		t.Errorf("incomplete day dot = %s, want partial", byDate["2024-06-06"])
	}
}

func TestComputeLast7DaysSeries(t *testing.T) {
	done := time.Date(2024, 6, 9, 15, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{Status: constants.StatusCompleted, CompletedAt: completedOn(done)},
	}

	d := Compute(tasks, noon)

	if len(d.Last7Days) != 7 {
		t.Fatalf("series length = %d, want 7", len(d.Last7Days))
	}
	if d.Last7Days[0].Date != "2024-06-04" || d.Last7Days[6].Date != "2024-06-10" {
		t.Errorf("series spans %s..%s, want 2024-06-04..2024-06-10",
			d.Last7Days[0].Date, d.Last7Days[6].Date)
	}
	for _, day := range d.Last7Days {
		want := 0
		if day.Date == "2024-06-09" {
			want = 1
		}
		if day.Completed != want {
			t.Errorf("completions on %s = %d, want %d", day.Date, day.Completed, want)
		}
	}
}
