package errors

import (
	"fmt"
	"net/http"
)

// NewScheduleConflict names the open task whose interval the rejected
// write would have overlapped.
func NewScheduleConflict(title string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("time overlaps existing task %q on the same day", title),
		StatusCode: http.StatusConflict,
	}
}
