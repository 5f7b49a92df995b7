package user

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"21", true},
		{"999", true},
		{"007", true},
		{" 12 ", true},
		{"", false},
		{"   ", false},
		{"abc", false},
		{"1.5", false},
		{"-1", false},
		{"+1", false},
		{"1a", false},
		{"1 2", false},
		{"٣", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ValidID(tt.in); got != tt.want {
				t.Fatalf("ValidID(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckID(t *testing.T) {
	if err := CheckID(" \t"); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if err := CheckID("abc"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := CheckID("3"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestPublic_OmitsEmail(t *testing.T) {
	dob, err := ParseDate("1989-03-14")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	u := User{
		ID:          "1",
		FirstName:   "liam",
		LastName:    "cohen",
		DateOfBirth: dob,
		JobTitle:    "software engineer",
		Department:  DepartmentEngineering,
		Email:       "liam.cohen@company.com",
		CreatedAt:   time.Date(2025, 2, 2, 10, 15, 23, 0, time.UTC),
	}

	b, err := json.Marshal(u.Public())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := fields["email"]; ok {
		t.Fatalf("email leaked: %s", b)
	}

	want := map[string]any{
		"id":            "1",
		"first_name":    "liam",
		"last_name":     "cohen",
		"date_of_birth": "1989-03-14",
		"job_title":     "software engineer",
		"department":    "Engineering",
		"created_at":    "2025-02-02T10:15:23Z",
	}

	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d: %s", len(fields), len(want), b)
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("field %q = %v, want %v", k, fields[k], v)
		}
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"1996-07-30"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "1996-07-30" {
		t.Fatalf("got %s", d)
	}

	if err := json.Unmarshal([]byte(`"30/07/1996"`), &d); err == nil {
		t.Fatalf("expected error for bad layout")
	}
}

func TestDepartment_Valid(t *testing.T) {
	if !DepartmentSales.Valid() {
		t.Fatalf("Sales should be valid")
	}
	if Department("Legal").Valid() {
		t.Fatalf("Legal should not be valid")
	}
}
