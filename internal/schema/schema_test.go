package schema

import (
	"strings"
	"testing"
)

type record struct {
	ID     string  `json:"id" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Status string  `json:"status" validate:"required,oneof=Pending Approved Rejected Cancelled"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Note   *string `json:"note,omitempty"`
}

func intPtr(v int) *int { return &v }

func TestValidateAcceptsConformingRecord(t *testing.T) {
	r := record{ID: "r1", Email: "a@example.com", Status: "Pending", Rating: intPtr(3)}
	if err := Validate("record", r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	r := record{Email: "a@example.com", Status: "Pending"}
	err := Validate("record", r)
	if err == nil {
		t.Fatal("expected error for missing id")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected validation error kind, got %T", err)
	}
	if !strings.Contains(err.Error(), "id") {
		t.Fatalf("error should name the json field: %v", err)
	}
}

func TestValidateEnumViolation(t *testing.T) {
	r := record{ID: "r1", Email: "a@example.com", Status: "Maybe"}
	if err := Validate("record", r); err == nil {
		t.Fatal("expected error for out-of-enum status")
	}
}

func TestValidateBoundedRating(t *testing.T) {
	r := record{ID: "r1", Email: "a@example.com", Status: "Pending", Rating: intPtr(6)}
	if err := Validate("record", r); err == nil {
		t.Fatal("expected error for rating > 5")
	}
}

func TestOptionalAbsentFieldIsNotDefaulted(t *testing.T) {
	r := record{ID: "r1", Email: "a@example.com", Status: "Pending"}
	if err := Validate("record", r); err != nil {
		t.Fatalf("absent optional field must pass: %v", err)
	}
	if r.Rating != nil || r.Note != nil {
		t.Fatal("optional fields must stay absent")
	}
}

func TestValidateSliceFailClosed(t *testing.T) {
	rs := []record{
		{ID: "r1", Email: "a@example.com", Status: "Pending"},
		{ID: "r2", Email: "not-an-email", Status: "Pending"},
		{ID: "r3", Email: "c@example.com", Status: "Pending"},
	}
	err := ValidateSlice("record", rs)
	if err == nil {
		t.Fatal("one bad element must fail the whole collection")
	}
	if !strings.Contains(err.Error(), "record[1]") {
		t.Fatalf("error should carry the failing index: %v", err)
	}
}

func TestValidateSliceEmpty(t *testing.T) {
	if err := ValidateSlice("record", []record{}); err != nil {
		t.Fatalf("empty collection is valid: %v", err)
	}
}
