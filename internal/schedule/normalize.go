package schedule

import (
	"task-planner.com/task-planner/internal/constants"
	model "task-planner.com/task-planner/internal/models"
)

// Normalize migrates a freshly loaded record to the current schema:
// the time mode is made explicit and the kind column is backfilled from
// the legacy recurring markers. Applied once on load so the rest of the
// engine never re-infers these ad hoc.
func Normalize(t *model.Task) {
	NormalizeTimeMode(t)
	NormalizeKind(t)
}

// NormalizeTimeMode fills in the time mode for records written before
// the column existed: both times present means interval, a lone start
// means single, otherwise none.
func NormalizeTimeMode(t *model.Task) {
	if t.TimeMode != "" {
		return
	}
	t.TimeMode = inferTimeMode(*t)
}

func inferTimeMode(t model.Task) constants.TimeMode {
	switch {
	case t.StartTime != "" && t.EndTime != "":
		return constants.TimeModeInterval
	case t.StartTime != "":
		return constants.TimeModeSingle
	default:
		return constants.TimeModeNone
	}
}

// NormalizeKind backfills the kind discriminator on legacy rows that
// only carry the old Work status or "work" type tag.
func NormalizeKind(t *model.Task) {
	if t.Kind != "" {
		return
	}
	if t.Status == constants.StatusWork || t.Type == constants.LegacyWorkType {
		t.Kind = constants.KindRecurring
		return
	}
	t.Kind = constants.KindOrdinary
}

// IsRecurring reports whether a task is a recurring-schedule block.
// Any of the three historical markers implies recurring; none of them
// is trusted over the others.
func IsRecurring(t model.Task) bool {
	return t.Kind == constants.KindRecurring ||
		t.Status == constants.StatusWork ||
		t.Type == constants.LegacyWorkType
}

// IsClosed reports whether a task is finished or abandoned and so
// exempt from conflict checks.
func IsClosed(t model.Task) bool {
	return t.Status == constants.StatusCompleted || t.Status == constants.StatusCanceled
}
