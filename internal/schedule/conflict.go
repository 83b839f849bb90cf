package schedule

import (
	model "task-planner.com/task-planner/internal/models"
)

// FindOverlap returns the first open task whose time window intersects
// the candidate interval on the same date, or nil when the slot is
// free. excludeID skips the task being edited so it cannot conflict
// with its own prior state. Completed and Canceled tasks never match;
// tasks without a usable interval are ignored.
func FindOverlap(tasks []model.Task, candidate Interval, excludeID string) *model.Task {
	for i := range tasks {
		t := tasks[i]

		if excludeID != "" && t.ID == excludeID {
			continue
		}
		if t.DueDate != candidate.Date {
			continue
		}
		if IsClosed(t) {
			continue
		}

		existing, ok := TaskInterval(t)
		if !ok {
			continue
		}

		if Overlaps(candidate, existing) {
			return &tasks[i]
		}
	}

	return nil
}
