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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-30"); !ok {
		t.Errorf("IsValidDate(%q) = false, want true", "2025-06-30")
	}
	for _, bad := range []string{"30-06-2025", "2025/06/30", "2025-13-01", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	for _, good := range []string{"00:00", "09:30", "23:59"} {
		if !IsValidTimeOfDay(good) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", good)
		}
	}
	for _, bad := range []string{"24:00", "9:3", "morning", ""} {
		if IsValidTimeOfDay(bad) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", bad)
		}
	}
}

func TestIsValidOJTNumber(t *testing.T) {
	if !IsValidOJTNumber("OJT-2025-0042") {
		t.Errorf("IsValidOJTNumber(%q) = false, want true", "OJT-2025-0042")
	}
	for _, bad := range []string{"OJT-25-0042", "ojt-2025-0042", "2025-0042", ""} {
		if IsValidOJTNumber(bad) {
			t.Errorf("IsValidOJTNumber(%q) = true, want false", bad)
		}
	}
}

func TestIsValidScanCode(t *testing.T) {
	for _, good := range []string{"ABCD", "stu_2025-01", "x1y2z3"} {
		if !IsValidScanCode(good) {
			t.Errorf("IsValidScanCode(%q) = false, want true", good)
		}
	}
	for _, bad := range []string{"ab", "has space", "bad!code", ""} {
		if IsValidScanCode(bad) {
			t.Errorf("IsValidScanCode(%q) = true, want false", bad)
		}
	}
}
