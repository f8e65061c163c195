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
	invalid := []string{"test@", "@example.com", "test@.com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2023-09-24", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"09/24/2023", false},
		{"2023-9-24", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidDate(c.input)
		if ok != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:3", "12:60", "noon", ""}
	for _, clock := range valid {
		if !IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClockTime(clock) {
			t.Errorf("IsValidClockTime(%q) = true, want false", clock)
		}
	}
}

func TestIsValidUPC(t *testing.T) {
	valid := []string{"12345678", "012345678905", "12345678901234"}
	invalid := []string{"1234567", "123456789012345", "12345abc", "", "12 345678"}
	for _, upc := range valid {
		if !IsValidUPC(upc) {
			t.Errorf("IsValidUPC(%q) = false, want true", upc)
		}
	}
	for _, upc := range invalid {
		if IsValidUPC(upc) {
			t.Errorf("IsValidUPC(%q) = true, want false", upc)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"admin", "employee"}
	if !IsInSlice("admin", slice) {
		t.Error("IsInSlice(admin) = false, want true")
	}
	if IsInSlice("manager", slice) {
		t.Error("IsInSlice(manager) = true, want false")
	}
	if IsInSlice("admin", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid format"},
		{Field: "hours", Message: "must be positive"},
	}

	want := "email: invalid format; hours: must be positive"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["email"] != "invalid format" || m["hours"] != "must be positive" {
		t.Errorf("ToMap() = %v", m)
	}
}
