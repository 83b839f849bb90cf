// Package stats aggregates derived task statuses into the dashboard
// figures: daily efficiency, best day, completion streak, and average
// completion time. It consumes the schedule engine's status derivation
// and adds counting only, no new invariants.
package stats

import (
	"fmt"
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
	"task-planner.com/task-planner/internal/schedule"
)

const dateLayout = "2006-01-02"

// streak scan stops after two years of history
const maxStreakDays = 730

type BestDay struct {
	Date  string `json:"date,omitempty"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

type StreakDot struct {
	Date string `json:"date"`
	// Type is "empty" (no active tasks), "partial", or "full".
	Type string `json:"type"`
}

type AverageCompletion struct {
	// Label is the mean completion time of day as HH:MM, empty when
	// no completions fall in the span.
	Label string `json:"label,omitempty"`
	Count int    `json:"count"`
}

type Dashboard struct {
	TodayEfficiency int               `json:"today_efficiency"`
	TodayCompleted  int               `json:"today_completed"`
	TodayTotal      int               `json:"today_total"`
	StreakDays      int               `json:"streak_days"`
	StreakDots      []StreakDot       `json:"streak_dots"`
	Last7Days       []DayCount        `json:"last_7_days"`
	BestAll         BestDay           `json:"best_all"`
	Best7           BestDay           `json:"best_7"`
	Best30          BestDay           `json:"best_30"`
	Avg7            AverageCompletion `json:"avg_7"`
	Avg30           AverageCompletion `json:"avg_30"`
}

// Compute builds the whole dashboard from the task set in one pass
// over each concern. Statuses are derived fresh against now.
func Compute(tasks []model.Task, now time.Time) Dashboard {
	today := now.Format(dateLayout)

	var todayTotal, todayCompleted int
	for _, t := range tasks {
		if t.DueDate != today || t.Status == constants.StatusCanceled {
			continue
		}
		todayTotal++
		if schedule.DeriveStatus(t, now) == constants.DerivedCompleted {
			todayCompleted++
		}
	}

	efficiency := 0
	if todayTotal > 0 {
		efficiency = int(float64(todayCompleted)/float64(todayTotal)*100 + 0.5)
	}

	completions := completionsByDate(tasks, now.Location())

	streakDays, streakDots := streak(tasks, now)

	return Dashboard{
		TodayEfficiency: efficiency,
		TodayCompleted:  todayCompleted,
		TodayTotal:      todayTotal,
		StreakDays:      streakDays,
		StreakDots:      streakDots,
		Last7Days:       lastDays(completions, now, 7),
		BestAll:         bestDay(completions, now, 0),
		Best7:           bestDay(completions, now, 7),
		Best30:          bestDay(completions, now, 30),
		Avg7:            averageCompletion(tasks, now, 7),
		Avg30:           averageCompletion(tasks, now, 30),
	}
}

// completionsByDate maps YYYY-MM-DD to the number of tasks completed
// on that date, keyed by the completion timestamp.
func completionsByDate(tasks []model.Task, loc *time.Location) map[string]int {
	m := make(map[string]int)
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		key := t.CompletedAt.In(loc).Format(dateLayout)
		m[key]++
	}
	return m
}

// bestDay finds the date with the most completions inside the span
// (0 = all time), ties resolved to the latest date.
func bestDay(completions map[string]int, now time.Time, spanDays int) BestDay {
	var from string
	if spanDays > 0 {
		from = now.AddDate(0, 0, -(spanDays - 1)).Format(dateLayout)
	}
	today := now.Format(dateLayout)

	var best BestDay
	for date, count := range completions {
		if from != "" && date < from {
			continue
		}
		if date > today {
			continue
		}
		if best.Date == "" || count > best.Count || (count == best.Count && date > best.Date) {
			best = BestDay{Date: date, Count: count}
		}
	}
	return best
}

func lastDays(completions map[string]int, now time.Time, n int) []DayCount {
	out := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		out = append(out, DayCount{Date: date, Completed: completions[date]})
	}
	return out
}

// streak counts consecutive days ending today on which every active
// task (Canceled excluded) derives as Completed. Days with no active
// tasks are skipped, not broken. Also reports the last seven days as
// empty/partial/full dots.
func streak(tasks []model.Task, now time.Time) (int, []StreakDot) {
	earliest := ""
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, t.DueDate); err != nil {
			continue
		}
		if earliest == "" || t.DueDate < earliest {
			earliest = t.DueDate
		}
	}
	if earliest == "" {
		return 0, nil
	}

	days := 0
	cursor := now
	for i := 0; i < maxStreakDays; i++ {
		date := cursor.Format(dateLayout)
		if date < earliest {
			break
		}

		total, complete := dayCompletion(tasks, date, now)
		if total == 0 {
			cursor = cursor.AddDate(0, 0, -1)
			continue
		}
		if !complete {
			break
		}
		days++
		cursor = cursor.AddDate(0, 0, -1)
	}

	dots := make([]StreakDot, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		total, complete := dayCompletion(tasks, date, now)
		switch {
		case total == 0:
			dots = append(dots, StreakDot{Date: date, Type: "empty"})
		case complete:
			dots = append(dots, StreakDot{Date: date, Type: "full"})
		default:
			dots = append(dots, StreakDot{Date: date, Type: "partial"})
		}
	}

	return days, dots
}

// dayCompletion reports how many active tasks a date has and whether
// all of them derive as Completed.
func dayCompletion(tasks []model.Task, date string, now time.Time) (int, bool) {
	total := 0
	complete := true
	for _, t := range tasks {
		if t.DueDate != date || t.Status == constants.StatusCanceled {
			continue
		}
		total++
		if schedule.DeriveStatus(t, now) != constants.DerivedCompleted {
			complete = false
		}
	}
	return total, total > 0 && complete
}

// averageCompletion takes the mean time of day of completion
// timestamps within the span.
func averageCompletion(tasks []model.Task, now time.Time, spanDays int) AverageCompletion {
	from := now.AddDate(0, 0, -(spanDays - 1)).Format(dateLayout)
	today := now.Format(dateLayout)

	sum, count := 0, 0
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		at := t.CompletedAt.In(now.Location())
		date := at.Format(dateLayout)
		if date < from || date > today {
			continue
		}
		sum += at.Hour()*60 + at.Minute()
		count++
	}

	if count == 0 {
		return AverageCompletion{}
	}

	avg := (sum + count/2) / count
	return AverageCompletion{
		Label: fmt.Sprintf("%02d:%02d", avg/60, avg%60),
		Count: count,
	}
}
