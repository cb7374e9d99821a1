package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}
	if !IsInSlice("warn", levels) {
		t.Errorf("IsInSlice(warn) = false, want true")
	}
	if IsInSlice("verbose", levels) {
		t.Errorf("IsInSlice(verbose) = true, want false")
	}
	if IsInSlice("debug", nil) {
		t.Errorf("IsInSlice on empty slice = true, want false")
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2025-11-20"}
	invalid := []string{"2023-13-01", "2023-01-32", "20230101", "01-01-2023", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"},
	}
	want := "start_date: start_date is required; end_date: end_date must be in YYYY-MM-DD format"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
	m := errs.ToMap()
	if m["start_date"] != "start_date is required" {
		t.Errorf("ToMap() missing start_date entry")
	}
}
