package onboarding

import (
	"strings"
	"testing"

	"moneymap/internal/models"
	"moneymap/internal/refdata"
)

func TestFinancialGoalSubmit_AdvancesMarker(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepFinancialGoal)

	form := NewFinancialGoalForm(user, &FinancialGoalPayload{
		FinancialGoals: []string{"travel", "pay_off_debt"},
	})
	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepProfileSetup) {
		t.Errorf("step = %q, want %q", fresh.OnboardingCurrentStep, StepProfileSetup)
	}
	if len(fresh.FinancialGoals) != 2 {
		t.Errorf("goals = %v, want the two submitted keys", fresh.FinancialGoals)
	}
}

func TestFinancialGoalValidate_NamesUnknownKeys(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepFinancialGoal)

	form := NewFinancialGoalForm(user, &FinancialGoalPayload{
		FinancialGoals: []string{"travel", "not_a_real_goal"},
	})
	if form.Submit(db) {
		t.Fatal("Submit() = true, want false")
	}
	msgs := form.Errors["financial_goals"]
	if len(msgs) != 1 || !strings.Contains(msgs[0], "not_a_real_goal") {
		t.Errorf("errors = %v, want one message naming not_a_real_goal", msgs)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if len(fresh.FinancialGoals) != 0 {
		t.Errorf("goals persisted = %v, want none", fresh.FinancialGoals)
	}
	if fresh.OnboardingCurrentStep != string(StepFinancialGoal) {
		t.Errorf("step = %q, want unchanged %q", fresh.OnboardingCurrentStep, StepFinancialGoal)
	}
}

// A user whose persisted marker got corrupted must be able to run the
// flow again from the first step instead of being stuck behind an
// unknown-step rejection.
func TestFinancialGoalSubmit_RestartsFromCorruptedMarker(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, Step("garbage"))

	form := NewFinancialGoalForm(user, &FinancialGoalPayload{
		FinancialGoals: []string{"travel"},
	})
	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepProfileSetup) {
		t.Errorf("step = %q, want %q", fresh.OnboardingCurrentStep, StepProfileSetup)
	}
}

func TestFinancialGoalValidate_EmptySelection(t *testing.T) {
	form := NewFinancialGoalForm(&models.User{}, &FinancialGoalPayload{FinancialGoals: []string{}})
	if form.Validate() {
		t.Fatal("Validate() = true, want false")
	}
	if len(form.Errors["financial_goals"]) == 0 {
		t.Errorf("errors = %v, want a financial_goals message", form.Errors)
	}
}

func TestProfileSetupSubmit_AdvancesMarker(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepProfileSetup)

	country, currency := "Canada", "cad"
	form := NewProfileSetupForm(user, &ProfileSetupPayload{
		Country:  &country,
		Currency: &currency,
	})
	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Errorf("step = %q, want %q", fresh.OnboardingCurrentStep, StepAccountSetup)
	}
	if fresh.Currency != "CAD" {
		t.Errorf("currency = %q, want normalized CAD", fresh.Currency)
	}
	if fresh.Country != "Canada" {
		t.Errorf("country = %q, want Canada", fresh.Country)
	}
}

// Resubmitting the same step twice must not move the marker past the
// step's legal successor.
func TestProfileSetupSubmit_ResubmitIsSafe(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepProfileSetup)

	country := "France"
	for i := 0; i < 2; i++ {
		form := NewProfileSetupForm(user, &ProfileSetupPayload{Country: &country})
		if !form.Submit(db) {
			t.Fatalf("submit %d: errors = %v", i, form.Errors)
		}
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Errorf("step = %q, want %q after double submit", fresh.OnboardingCurrentStep, StepAccountSetup)
	}
}

func TestNewProfileSetupForm_CurrencyDefault(t *testing.T) {
	form := NewProfileSetupForm(&models.User{}, nil)
	if form.Currency != refdata.DefaultCurrency {
		t.Errorf("currency = %q, want default %q", form.Currency, refdata.DefaultCurrency)
	}

	// a stored currency wins over the default
	form = NewProfileSetupForm(&models.User{Currency: "EUR"}, nil)
	if form.Currency != "EUR" {
		t.Errorf("currency = %q, want stored EUR", form.Currency)
	}
}

func TestProfileSetupValidate_EnumeratedFields(t *testing.T) {
	testCases := []struct {
		name    string
		payload ProfileSetupPayload
		field   string
	}{
		{"missing country", ProfileSetupPayload{}, "country"},
		{"bad currency", payloadWith("DE", "ZZZ", "", ""), "currency"},
		{"bad frequency", payloadWith("DE", "EUR", "hourly-ish", ""), "income_frequency"},
		{"bad source", payloadWith("DE", "EUR", "", "piracy"), "main_income_source"},
	}

	for _, tc := range testCases {
		form := NewProfileSetupForm(&models.User{}, &tc.payload)
		if form.Validate() {
			t.Errorf("%s: Validate() = true, want false", tc.name)
			continue
		}
		if len(form.Errors[tc.field]) == 0 {
			t.Errorf("%s: errors = %v, want a %s message", tc.name, form.Errors, tc.field)
		}
	}
}

func payloadWith(country, currency, frequency, source string) ProfileSetupPayload {
	p := ProfileSetupPayload{Country: &country, Currency: &currency}
	if frequency != "" {
		p.IncomeFrequency = &frequency
	}
	if source != "" {
		p.MainIncomeSource = &source
	}
	return p
}
