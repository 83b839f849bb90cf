package schedule

import (
	"time"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

const dateLayout = "2006-01-02"

// DeriveStatus computes a task's effective lifecycle state from its
// stored fields and the given instant. It is a total function over
// that tuple: no I/O, no side effects, safe to call on every read.
//
// Priority order: an explicit Canceled or Completed always wins; then
// the calendar day decides Upcoming vs Overdue (ordinary) or Upcoming
// vs auto-Completed (recurring); on the due day itself the stored time
// window decides. Recurring blocks resolve as Completed once their day
// or window has passed, they never go Overdue.
func DeriveStatus(t model.Task, now time.Time) constants.DerivedStatus {
	Normalize(&t)

	if t.Status == constants.StatusCanceled {
		return constants.DerivedCanceled
	}
	if t.Status == constants.StatusCompleted || t.CompletedAt != nil {
		return constants.DerivedCompleted
	}

	due, err := time.ParseInLocation(dateLayout, t.DueDate, now.Location())
	if err != nil {
		// Degenerate record with no usable date: a Pending task is
		// treated as in progress, anything else passes through.
		if t.Status == "" || t.Status == constants.StatusPending {
			return constants.DerivedInProgress
		}
		return constants.DerivedStatus(t.Status)
	}

	today := dayOf(now)

	if IsRecurring(t) {
		switch {
		case due.After(today):
			return constants.DerivedUpcoming
		case due.Before(today):
			return constants.DerivedCompleted
		}

		start, startOK := atMinutes(due, t.StartTime)
		end, endOK := atMinutes(due, t.EndTime)
		if startOK && endOK {
			switch {
			case now.Before(start):
				return constants.DerivedUpcoming
			case now.After(end):
				return constants.DerivedCompleted
			}
		}
		return constants.DerivedInProgress
	}

	switch {
	case due.After(today):
		return constants.DerivedUpcoming
	case due.Before(today):
		return constants.DerivedOverdue
	}

	hasInterval := t.TimeMode == constants.TimeModeInterval && t.StartTime != "" && t.EndTime != ""
	hasSingle := t.TimeMode == constants.TimeModeSingle && t.StartTime != "" && t.EndTime == ""

	if hasInterval {
		start, startOK := atMinutes(due, t.StartTime)
		end, endOK := atMinutes(due, t.EndTime)
		if startOK && endOK {
			switch {
			case now.Before(start):
				return constants.DerivedUpcoming
			case now.After(end):
				return constants.DerivedOverdue
			default:
				return constants.DerivedInProgress
			}
		}
	}

	if hasSingle {
		if at, ok := atMinutes(due, t.StartTime); ok {
			if now.Before(at) {
				return constants.DerivedUpcoming
			}
			return constants.DerivedOverdue
		}
	}

	return constants.DerivedInProgress
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atMinutes(day time.Time, hhmm string) (time.Time, bool) {
	minutes, ok := TimeToMinutes(hhmm)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(time.Duration(minutes) * time.Minute), true
}
