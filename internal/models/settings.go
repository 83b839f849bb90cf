package model

import (
	"strings"

	"task-planner.com/task-planner/internal/constants"
)

// DaySchedule is the per-weekday block used by the custom schedule mode.
type DaySchedule struct {
	Enabled bool   `json:"enabled" toml:"enabled"`
	Start   string `json:"start" toml:"start"`
	End     string `json:"end" toml:"end"`
}

// ScheduleSettings is the recurring-schedule configuration for one user.
// Simple mode applies one shared interval to the selected weekdays;
// custom mode carries an independent block per weekday.
type ScheduleSettings struct {
	WorkLabel    string                                    `json:"work_label" toml:"work_label"`
	ScheduleMode constants.ScheduleMode                    `json:"schedule_mode" toml:"schedule_mode"`
	WorkDays     []constants.Weekday                       `json:"work_days" toml:"work_days"`
	WorkStart    string                                    `json:"work_start" toml:"work_start"`
	WorkEnd      string                                    `json:"work_end" toml:"work_end"`
	PerDay       map[constants.Weekday]DaySchedule         `json:"per_day" toml:"per_day"`
	WakeTime     string                                    `json:"wake_time,omitempty" toml:"wake_time"`
	SleepTime    string                                    `json:"sleep_time,omitempty" toml:"sleep_time"`
}

const DefaultWorkLabel = "Work"

func DefaultScheduleSettings() ScheduleSettings {
	return ScheduleSettings{
		WorkLabel:    DefaultWorkLabel,
		ScheduleMode: constants.ScheduleModeSimple,
		WorkDays:     []constants.Weekday{constants.Mon, constants.Tue, constants.Wed, constants.Thu, constants.Fri},
		WorkStart:    "08:00",
		WorkEnd:      "16:00",
		PerDay:       EmptyPerDaySchedule(),
		WakeTime:     "07:00",
		SleepTime:    "23:30",
	}
}

// EmptyPerDaySchedule returns a per-day map with every weekday disabled
// and the shared default hours filled in.
func EmptyPerDaySchedule() map[constants.Weekday]DaySchedule {
	perDay := make(map[constants.Weekday]DaySchedule, len(constants.Weekdays))
	for _, d := range constants.Weekdays {
		perDay[d] = DaySchedule{Enabled: false, Start: "08:00", End: "16:00"}
	}
	return perDay
}

// Label returns the trimmed program name, falling back to the default
// when the user left it blank.
func (s ScheduleSettings) Label() string {
	label := strings.TrimSpace(s.WorkLabel)
	if label == "" {
		return DefaultWorkLabel
	}
	return label
}
