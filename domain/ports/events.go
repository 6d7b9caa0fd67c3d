package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TaskCreated = "tasks.created"
	TaskUpdated = "tasks.updated"
	TaskDeleted = "tasks.deleted"
)

// TaskEvent notifies downstream consumers of a committed task mutation.
type TaskEvent struct {
	Type       string      `json:"type"`
	OwnerID    uuid.UUID   `json:"ownerId"`
	TaskIDs    []uuid.UUID `json:"taskIds"`
	OccurredAt time.Time   `json:"occurredAt"`
}

type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}
