package dto

type CreateTaskRequest struct {
	Title      string `json:"title"`
	DueDate    string `json:"due_date"`
	Importance string `json:"importance"`
	TimeMode   string `json:"time_mode"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
}

// UpdateTaskRequest is a merge patch; nil means "leave unchanged".
type UpdateTaskRequest struct {
	Title      *string `json:"title"`
	DueDate    *string `json:"due_date"`
	Importance *string `json:"importance"`
	TimeMode   *string `json:"time_mode"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Status     *string `json:"status"`
}

type RescheduleRequest struct {
	DueDate string `json:"due_date"`
}
