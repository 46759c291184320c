package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the department repository.
const (
	TopicDepartmentCreated = "department.created"
	TopicDepartmentUpdated = "department.updated"
	TopicDepartmentDeleted = "department.deleted"
)

// EventVersion is the current schema version of every department event.
const EventVersion = 1

// DepartmentChangedEvent is published on department.created and department.updated.
type DepartmentChangedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	DepartmentID int64     `json:"department_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	IsActive     bool      `json:"is_active"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// DepartmentDeletedEvent is published on department.deleted.
type DepartmentDeletedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	DepartmentID int64     `json:"department_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
