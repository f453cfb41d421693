package onboarding

import (
	"fmt"
	"strings"

	"moneymap/internal/models"
	"moneymap/internal/refdata"
)

// seedStep gives a user without a usable marker the identifier of the
// step being constructed. Empty and unknown markers both count as unset,
// so a corrupted marker restarts the flow instead of wedging it. A known
// marker is never overwritten, so replaying an earlier step's link cannot
// move an advanced user backward.
func seedStep(user *models.User, step Step) {
	if !Step(user.OnboardingCurrentStep).Known() {
		user.OnboardingCurrentStep = string(step)
	}
}

// advance moves the marker to the given step if that is the legal next
// transition from the user's current position. Anything else is ignored,
// which keeps the marker monotonic across any sequence of submits.
func advance(user *models.User, to Step) {
	if CanTransition(Step(user.OnboardingCurrentStep), to) {
		user.OnboardingCurrentStep = string(to)
	}
}

// validateUser re-checks the user record as a whole after a form copied
// its fields on. Catches cross-field problems the per-step validation
// cannot see.
func validateUser(user *models.User) Errors {
	errs := Errors{}
	if strings.TrimSpace(user.Username) == "" {
		errs.Add("username", "username is required")
	}
	if user.Currency != "" && !refdata.ValidCurrency(user.Currency) {
		errs.Add("currency", fmt.Sprintf("unknown currency code %q", user.Currency))
	}
	if user.IncomeFrequency != "" && !refdata.ValidIncomeFrequency(user.IncomeFrequency) {
		errs.Add("income_frequency", fmt.Sprintf("unknown income frequency %q", user.IncomeFrequency))
	}
	for _, goal := range user.FinancialGoals {
		if !refdata.ValidGoal(goal) {
			errs.Add("financial_goals", fmt.Sprintf("unknown goal %q", goal))
		}
	}
	if !Step(user.OnboardingCurrentStep).Known() {
		errs.Add("onboarding_current_step", fmt.Sprintf("unknown step %q", user.OnboardingCurrentStep))
	}
	return errs
}
