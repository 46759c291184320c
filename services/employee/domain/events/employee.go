package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the employee repository.
const (
	TopicEmployeeCreated = "employee.created"
	TopicEmployeeUpdated = "employee.updated"
	TopicEmployeeDeleted = "employee.deleted"
)

// EventVersion is the current schema version of every employee event.
const EventVersion = 1

// EmployeeChangedEvent is published on employee.created and employee.updated.
type EmployeeChangedEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	Version      int       `json:"version"`
	EmployeeID   int64     `json:"employee_id"`
	Email        string    `json:"email"`
	DepartmentID int64     `json:"department_id"`
	IsActive     bool      `json:"is_active"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EmployeeDeletedEvent is published on employee.deleted.
type EmployeeDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	EmployeeID int64     `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
