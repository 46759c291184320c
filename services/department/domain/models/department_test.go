package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestNewDepartment(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	budget := decimal.RequireFromString("150000.00")

	d := NewDepartment(DepartmentInput{
		Name:     "Engineering",
		Code:     "ENG",
		Location: strPtr("Berlin"),
		Budget:   &budget,
	}, now)

	if d.ID != 0 {
		t.Fatalf("expected unsaved department, got id %d", d.ID)
	}
	if !d.IsActive {
		t.Fatal("expected omitted isActive to default to true")
	}
	if !d.CreatedAt.Equal(now) || !d.UpdatedAt.Equal(now) {
		t.Fatalf("expected both timestamps %v, got %v / %v", now, d.CreatedAt, d.UpdatedAt)
	}
	if d.Location == nil || *d.Location != "Berlin" {
		t.Fatalf("unexpected location %v", d.Location)
	}
}

func TestDepartment_Replace(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	inactive := false

	d := NewDepartment(DepartmentInput{
		Name:        "Engineering",
		Code:        "ENG",
		Description: strPtr("Builds things"),
		Location:    strPtr("Berlin"),
	}, created)
	d.ID = 3

	d.Replace(DepartmentInput{Name: "Platform", Code: "PLT", IsActive: &inactive}, updated)

	t.Run("overwrites every field", func(t *testing.T) {
		if d.Name != "Platform" || d.Code != "PLT" {
			t.Fatalf("unexpected name/code %q/%q", d.Name, d.Code)
		}
		if d.Description != nil || d.Location != nil {
			t.Fatal("omitted optional fields must be cleared on full replace")
		}
		if d.IsActive {
			t.Fatal("expected isActive=false")
		}
	})

	t.Run("keeps identity and creation time", func(t *testing.T) {
		if d.ID != 3 {
			t.Fatalf("ID changed to %d", d.ID)
		}
		if !d.CreatedAt.Equal(created) {
			t.Fatalf("CreatedAt changed to %v", d.CreatedAt)
		}
		if !d.UpdatedAt.Equal(updated) {
			t.Fatalf("UpdatedAt = %v, want %v", d.UpdatedAt, updated)
		}
	})
}
