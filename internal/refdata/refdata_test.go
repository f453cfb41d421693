package refdata

import "testing"

func TestValidGoal(t *testing.T) {
	for _, goal := range Goals {
		if !ValidGoal(goal) {
			t.Errorf("ValidGoal(%q) = false, want true", goal)
		}
	}
	for _, goal := range []string{"", "Travel", "get_rich_quick"} {
		if ValidGoal(goal) {
			t.Errorf("ValidGoal(%q) = true, want false", goal)
		}
	}
}

func TestValidCurrency(t *testing.T) {
	testCases := []struct {
		code string
		want bool
	}{
		{"USD", true},
		{"usd", true},
		{"EUR", true},
		{"", false},
		{"ZZZ", false},
		{"US", false},
	}

	for _, tc := range testCases {
		if got := ValidCurrency(tc.code); got != tc.want {
			t.Errorf("ValidCurrency(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

// Every code the profile screen offers must pass its own validator.
func TestCuratedListsAreValid(t *testing.T) {
	for _, code := range Currencies {
		if !ValidCurrency(code) {
			t.Errorf("curated currency %q not recognized", code)
		}
	}
	for _, code := range PriorityCurrencies {
		if !ValidCurrency(code) {
			t.Errorf("priority currency %q not recognized", code)
		}
	}
	if !ValidCurrency(DefaultCurrency) {
		t.Errorf("default currency %q not recognized", DefaultCurrency)
	}
}

func TestPrioritySubsets(t *testing.T) {
	currencySet := map[string]bool{}
	for _, c := range Currencies {
		currencySet[c] = true
	}
	for _, c := range PriorityCurrencies {
		if !currencySet[c] {
			t.Errorf("priority currency %q missing from full list", c)
		}
	}

	countrySet := map[string]bool{}
	for _, c := range Countries {
		countrySet[c] = true
	}
	for _, c := range PriorityCountries {
		if !countrySet[c] {
			t.Errorf("priority country %q missing from full list", c)
		}
	}
}

func TestValidIncomeFrequency(t *testing.T) {
	if !ValidIncomeFrequency("monthly") {
		t.Error("ValidIncomeFrequency(monthly) = false, want true")
	}
	if ValidIncomeFrequency("Monthly") || ValidIncomeFrequency("hourly") {
		t.Error("unknown frequency accepted")
	}
}

func TestValidMainIncomeSource(t *testing.T) {
	if !ValidMainIncomeSource("salary") {
		t.Error("ValidMainIncomeSource(salary) = false, want true")
	}
	if ValidMainIncomeSource("lottery") {
		t.Error("unknown source accepted")
	}
}
