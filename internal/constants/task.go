package constants

import "time"

type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
	StatusCanceled  TaskStatus = "Canceled"

	// StatusWork is a legacy marker for recurring-schedule tasks. New
	// records carry KindRecurring instead; the status survives only so
	// old rows keep working.
	StatusWork TaskStatus = "Work"
)

// DerivedStatus is the lifecycle state computed from a task's stored
// fields and the current instant. It is never persisted.
type DerivedStatus string

const (
	DerivedUpcoming   DerivedStatus = "Upcoming"
	DerivedInProgress DerivedStatus = "In Progress"
	DerivedOverdue    DerivedStatus = "Overdue"
	DerivedCompleted  DerivedStatus = "Completed"
	DerivedCanceled   DerivedStatus = "Canceled"
)

type TaskKind string

const (
	KindOrdinary  TaskKind = "ordinary"
	KindRecurring TaskKind = "recurring"
)

// LegacyWorkType is the old free-form tag that marked recurring tasks
// before the kind column existed.
const LegacyWorkType = "work"

type TimeMode string

const (
	TimeModeNone     TimeMode = "none"
	TimeModeSingle   TimeMode = "single"
	TimeModeInterval TimeMode = "interval"
)

type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

type ScheduleMode string

const (
	ScheduleModeSimple ScheduleMode = "simple"
	ScheduleModeCustom ScheduleMode = "custom"
)

// Weekday is the three-letter weekday id used by schedule settings.
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

var Weekdays = []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Mon
	case time.Tuesday:
		return Tue
	case time.Wednesday:
		return Wed
	case time.Thursday:
		return Thu
	case time.Friday:
		return Fri
	case time.Saturday:
		return Sat
	default:
		return Sun
	}
}

func ValidImportance(v Importance) bool {
	switch v {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	}
	return false
}

func ValidTimeMode(v TimeMode) bool {
	switch v {
	case TimeModeNone, TimeModeSingle, TimeModeInterval:
		return true
	}
	return false
}

func ValidWeekday(v Weekday) bool {
	for _, d := range Weekdays {
		if d == v {
			return true
		}
	}
	return false
}
