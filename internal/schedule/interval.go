// Package schedule is the scheduling consistency engine: minute-offset
// intervals, on-demand status derivation, same-day conflict detection,
// and the 30-day recurring-schedule materializer. Everything here is a
// pure computation over caller-supplied records; persistence belongs to
// the repositories.
package schedule

import (
	"strconv"
	"strings"

	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

const minutesPerDay = 24 * 60

// Interval is a half-open [Start, End) minute-offset range within a
// single calendar day.
type Interval struct {
	Date  string
	Start int
	End   int
}

// TimeToMinutes converts an HH:MM wall-clock string into minutes since
// midnight. Malformed input reports ok=false, never panics.
func TimeToMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	total := h*60 + m
	if h < 0 || m < 0 || m > 59 || total >= minutesPerDay {
		return 0, false
	}

	return total, true
}

// BuildInterval turns a task's date and time fields into a comparable
// interval. Single-point times get a one-minute window so they still
// participate in overlap math. Returns ok=false when no usable interval
// exists: missing date or start, unparseable times, end not after
// start, or no time set at all.
func BuildInterval(date string, mode constants.TimeMode, startTime, endTime string) (Interval, bool) {
	if date == "" || startTime == "" {
		return Interval{}, false
	}
	if mode == "" || mode == constants.TimeModeNone {
		return Interval{}, false
	}

	start, ok := TimeToMinutes(startTime)
	if !ok {
		return Interval{}, false
	}

	var end int
	if mode == constants.TimeModeInterval {
		end, ok = TimeToMinutes(endTime)
		if !ok || end <= start {
			return Interval{}, false
		}
	} else {
		end = start + 1
	}

	return Interval{Date: date, Start: start, End: end}, true
}

// TaskInterval builds the interval occupied by an existing task,
// inferring the time mode from its time fields when the record predates
// the time_mode column.
func TaskInterval(t model.Task) (Interval, bool) {
	mode := t.TimeMode
	if mode == "" || mode == constants.TimeModeNone {
		mode = inferTimeMode(t)
	}
	return BuildInterval(t.DueDate, mode, t.StartTime, t.EndTime)
}

// Overlaps reports whether two same-day intervals intersect.
func Overlaps(a, b Interval) bool {
	return a.Date == b.Date && a.Start < b.End && b.Start < a.End
}
