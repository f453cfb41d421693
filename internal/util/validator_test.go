package util

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"100", "100", false},
		{" 12.50 ", "12.5", false},
		{"0.01", "0.01", false},
		{"0", "", true},
		{"-5", "", true},
		{"10000000", "", true},
		{"9999999.99", "9999999.99", false},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) err = nil, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) err = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-03-15", "2026-03-15", false},
		{"2026-03-15T10:30:00", "2026-03-15", false},
		{"2026-03-15T10:30:00Z", "2026-03-15", false},
		{"15/03/2026", "", true},
		{"", "", true},
		{"yesterday", "", true},
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) err = nil, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) err = %v", tc.in, err)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Cash", 50); err != nil {
		t.Errorf("ValidateName(Cash) = %v, want nil", err)
	}
	if err := ValidateName("   ", 50); err == nil {
		t.Error("ValidateName(blank) = nil, want error")
	}
	if err := ValidateName("abcdef", 5); err == nil {
		t.Error("ValidateName over cap = nil, want error")
	}
}
