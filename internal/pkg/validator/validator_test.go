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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestLengthBetween(t *testing.T) {
	cases := []struct {
		input    string
		min, max int
		want     bool
	}{
		{"abc", 3, 20, true},
		{"ab", 3, 20, false},
		{"", 2, 50, false},
		{"exactly-twenty-chars", 3, 20, true},
		{"twenty-one-characters", 3, 20, false},
		{"日本語", 3, 20, true},
	}
	for _, c := range cases {
		got := LengthBetween(c.input, c.min, c.max)
		if got != c.want {
			t.Errorf("LengthBetween(%q, %d, %d) = %v, want %v", c.input, c.min, c.max, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-10", "1999-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2024-01-32", "10-01-2024", "2024/01/10", "not-a-date", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"Present", "Absent"}
	if !IsInSlice("Present", statuses) {
		t.Error(`IsInSlice("Present") = false, want true`)
	}
	if IsInSlice("present", statuses) {
		t.Error(`IsInSlice("present") = true, want false`)
	}
	if IsInSlice("Late", statuses) {
		t.Error(`IsInSlice("Late") = true, want false`)
	}
}
