// Package onboarding implements the three-step onboarding flow: the
// persisted step marker, the forward-only transitions between steps, and
// the form object for each step.
package onboarding

import "moneymap/internal/models"

// Step is the onboarding progress marker persisted on the user row.
type Step string

const (
	StepFinancialGoal Step = "financial_goal"
	StepProfileSetup  Step = "profile_setup"
	StepAccountSetup  Step = "account_setup"
	StepCompleted     Step = "completed"
)

// stepOrder fixes the flow; transitions only ever move forward along it.
var stepOrder = []Step{
	StepFinancialGoal,
	StepProfileSetup,
	StepAccountSetup,
	StepCompleted,
}

// Index returns the step's position in the flow, or -1 for an unknown
// marker.
func (s Step) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Known reports whether s is one of the four step identifiers.
func (s Step) Known() bool {
	return s.Index() >= 0
}

// Next returns the step that follows s. Completed is terminal.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i == len(stepOrder)-1 {
		return StepCompleted
	}
	return stepOrder[i+1]
}

// CanTransition reports whether moving the marker from one step to another
// is allowed: only the immediate next step. Backward and non-adjacent
// writes are rejected.
func CanTransition(from, to Step) bool {
	return from.Known() && to == from.Next()
}

// Destinations the navigator can produce.
const (
	PathFinancialGoal = "/onboarding/financial_goal"
	PathProfileSetup  = "/onboarding/profile_setup"
	PathAccountSetup  = "/onboarding/account_setup"
	PathDashboard     = "/dashboard"
)

// NextPath maps the user's current step marker to the destination the
// caller should redirect to: the page for the step still to be done, or
// the dashboard once onboarding is completed. Unknown or missing markers
// restart at the first step rather than failing.
func NextPath(user *models.User) string {
	switch Step(user.OnboardingCurrentStep) {
	case StepProfileSetup:
		return PathProfileSetup
	case StepAccountSetup:
		return PathAccountSetup
	case StepCompleted:
		return PathDashboard
	default:
		return PathFinancialGoal
	}
}
