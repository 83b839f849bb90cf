package errors

import "net/http"

// ErrRecurringTaskEdit rejects direct schedule-field edits on
// materializer-generated tasks; the materializer is their sole writer.
// Marking one completed is still allowed.
var ErrRecurringTaskEdit = &Exception{
	Message:    "recurring schedule tasks can only be edited from the schedule settings",
	StatusCode: http.StatusForbidden,
}
