package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FlexTime accepts both RFC 3339 and the datetime-local layouts browsers emit
// ("2024-01-01T00:00"). It marshals as RFC 3339.
type FlexTime struct {
	time.Time
}

var flexTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range flexTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized time value %q", s)
}

type CreateTaskRequest struct {
	Title     string    `json:"title" validate:"required,min=1,max=200"`
	StartTime *FlexTime `json:"startTime" validate:"required"`
	EndTime   *FlexTime `json:"endTime" validate:"required"`
	Priority  int       `json:"priority" validate:"required,min=1,max=5"`
	Status    string    `json:"status" validate:"required,oneof=Pending Finished"`
}

// UpdateTaskRequest is a sparse update: only fields present in the request body
// are applied.
type UpdateTaskRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1,max=200"`
	StartTime *FlexTime `json:"startTime"`
	EndTime   *FlexTime `json:"endTime"`
	Priority  *int      `json:"priority" validate:"omitempty,min=1,max=5"`
	Status    *string   `json:"status" validate:"omitempty,oneof=Pending Finished"`
}

type DeleteTasksRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// TaskListQuery carries the already-parsed /tasks query parameters.
type TaskListQuery struct {
	Priority *int
	Status   string
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

type TaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Priority  int       `json:"priority"`
	Status    string    `json:"status"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PrioritySummary struct {
	Priority        int     `json:"priority"`
	TaskCount       int     `json:"taskCount"`
	PendingCount    int     `json:"pendingCount"`
	TimeLapsedHours float64 `json:"timeLapsedHours"`
	TimeLeftHours   float64 `json:"timeLeftHours"`
}

type TaskSummaryResponse struct {
	TotalTasks           int               `json:"totalTasks"`
	PendingCount         int               `json:"pendingCount"`
	FinishedCount        int               `json:"finishedCount"`
	PendingPercentage    float64           `json:"pendingPercentage"`
	FinishedPercentage   float64           `json:"finishedPercentage"`
	TotalTimeLapsedHours float64           `json:"totalTimeLapsedHours"`
	TotalTimeLeftHours   float64           `json:"totalTimeLeftHours"`
	Priorities           []PrioritySummary `json:"priorities"`
}
