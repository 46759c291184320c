package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizservices/services/department/domain/events"
)

func TestDepartmentChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.DepartmentChangedEvent{
		EventID:      uuid.New(),
		Version:      events.EventVersion,
		DepartmentID: 12,
		Name:         "Engineering",
		Code:         "ENG",
		IsActive:     true,
		OccurredAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "department_id", "name", "code", "is_active", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics(t *testing.T) {
	topics := map[string]string{
		events.TopicDepartmentCreated: "department.created",
		events.TopicDepartmentUpdated: "department.updated",
		events.TopicDepartmentDeleted: "department.deleted",
	}
	for got, want := range topics {
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
