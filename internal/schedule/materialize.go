package schedule

import (
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

// DaysAhead is the rolling horizon of the materializer: today plus the
// next 30 calendar days.
const DaysAhead = 30

// RecurringUpdate overwrites an existing recurring task's schedule
// fields in place, keyed by record id.
type RecurringUpdate struct {
	ID        string
	Title     string
	StartTime string
	EndTime   string
}

// Plan is the write-set prescribed by one materializer run. Applying
// it against storage is the caller's job, which keeps the engine
// testable without a live store.
type Plan struct {
	// CancelIDs are ordinary open tasks whose window the recurring
	// block now covers; they are to be set Canceled.
	CancelIDs []string
	// Creates are fully formed recurring records for dates that had
	// none. Storage assigns ids and creation timestamps.
	Creates []model.Task
	// Updates overwrite the recurring record already present on a
	// date, making reruns idempotent.
	Updates []RecurringUpdate
}

// CanceledCount reports how many ordinary tasks the run auto-cancels,
// for user notification.
func (p Plan) CanceledCount() int {
	return len(p.CancelIDs)
}

// Materialize walks the 30-day window starting at today and computes
// the record mutations implied by the schedule settings: one recurring
// task upserted per active date, and every ordinary open task whose
// interval overlaps the block canceled. The input slice is never
// mutated.
func Materialize(tasks []model.Task, settings model.ScheduleSettings, today time.Time) Plan {
	var plan Plan

	start := dayOf(today)
	title := settings.Label()

	for offset := 0; offset <= DaysAhead; offset++ {
		day := start.AddDate(0, 0, offset)
		dateStr := day.Format(dateLayout)

		enabled, blockStart, blockEnd := resolveDay(settings, constants.WeekdayOf(day))
		if !enabled {
			continue
		}

		startMin, startOK := TimeToMinutes(blockStart)
		endMin, endOK := TimeToMinutes(blockEnd)

		if startOK && endOK && endMin > startMin {
			block := Interval{Date: dateStr, Start: startMin, End: endMin}

			for i := range tasks {
				t := tasks[i]
				if t.DueDate != dateStr || IsRecurring(t) || IsClosed(t) {
					continue
				}
				iv, ok := TaskInterval(t)
				if !ok {
					continue
				}
				if Overlaps(block, iv) {
					plan.CancelIDs = append(plan.CancelIDs, t.ID)
				}
			}
		}

		if existing := findRecurringOn(tasks, dateStr); existing != nil {
			plan.Updates = append(plan.Updates, RecurringUpdate{
				ID:        existing.ID,
				Title:     title,
				StartTime: blockStart,
				EndTime:   blockEnd,
			})
		} else {
			plan.Creates = append(plan.Creates, model.Task{
				Title:      title,
				DueDate:    dateStr,
				Importance: constants.ImportanceHigh,
				TimeMode:   constants.TimeModeInterval,
				StartTime:  blockStart,
				EndTime:    blockEnd,
				Status:     constants.StatusPending,
				Kind:       constants.KindRecurring,
				IsAuto:     true,
			})
		}
	}

	return plan
}

// resolveDay picks the schedule block for one weekday from the active
// mode. Simple mode shares one interval across the selected days;
// custom mode reads the per-day map.
func resolveDay(s model.ScheduleSettings, day constants.Weekday) (bool, string, string) {
	if s.ScheduleMode == constants.ScheduleModeCustom {
		cfg, ok := s.PerDay[day]
		if !ok || !cfg.Enabled || cfg.Start == "" || cfg.End == "" {
			return false, "", ""
		}
		return true, cfg.Start, cfg.End
	}

	for _, d := range s.WorkDays {
		if d == day {
			return true, s.WorkStart, s.WorkEnd
		}
	}
	return false, "", ""
}

// findRecurringOn matches any recurring marker on the date, not a
// program name: at most one recurring task exists per calendar day.
func findRecurringOn(tasks []model.Task, date string) *model.Task {
	for i := range tasks {
		if tasks[i].DueDate == date && IsRecurring(tasks[i]) {
			return &tasks[i]
		}
	}
	return nil
}
