package onboarding

import (
	"testing"

	"moneymap/internal/models"
)

func TestNextPath_PerStep(t *testing.T) {
	testCases := []struct {
		step string
		want string
	}{
		{string(StepFinancialGoal), PathFinancialGoal},
		{string(StepProfileSetup), PathProfileSetup},
		{string(StepAccountSetup), PathAccountSetup},
		{string(StepCompleted), PathDashboard},
	}

	for _, tc := range testCases {
		user := &models.User{OnboardingCurrentStep: tc.step}
		if got := NextPath(user); got != tc.want {
			t.Errorf("NextPath(%q) = %q, want %q", tc.step, got, tc.want)
		}
	}
}

// Unknown or missing markers restart the flow instead of failing.
func TestNextPath_UnknownMarkerRestarts(t *testing.T) {
	for _, step := range []string{"", "garbage", "Completed", "step_4"} {
		user := &models.User{OnboardingCurrentStep: step}
		if got := NextPath(user); got != PathFinancialGoal {
			t.Errorf("NextPath(%q) = %q, want %q", step, got, PathFinancialGoal)
		}
	}
}

func TestStep_Next(t *testing.T) {
	testCases := []struct {
		step Step
		want Step
	}{
		{StepFinancialGoal, StepProfileSetup},
		{StepProfileSetup, StepAccountSetup},
		{StepAccountSetup, StepCompleted},
		{StepCompleted, StepCompleted},
	}

	for _, tc := range testCases {
		if got := tc.step.Next(); got != tc.want {
			t.Errorf("%q.Next() = %q, want %q", tc.step, got, tc.want)
		}
	}
}

func TestCanTransition_OnlyImmediateForward(t *testing.T) {
	allowed := map[[2]Step]bool{
		{StepFinancialGoal, StepProfileSetup}: true,
		{StepProfileSetup, StepAccountSetup}:  true,
		{StepAccountSetup, StepCompleted}:     true,
	}

	steps := []Step{StepFinancialGoal, StepProfileSetup, StepAccountSetup, StepCompleted}
	for _, from := range steps {
		for _, to := range steps {
			want := allowed[[2]Step{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_UnknownFrom(t *testing.T) {
	if CanTransition(Step("garbage"), StepProfileSetup) {
		t.Error("CanTransition from unknown step = true, want false")
	}
}

// advance never moves the marker backward or past the next step, so the
// marker is monotonic under any sequence of writes.
func TestAdvance_Monotonic(t *testing.T) {
	user := &models.User{OnboardingCurrentStep: string(StepAccountSetup)}

	advance(user, StepProfileSetup) // backward
	if user.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Fatalf("backward advance moved marker to %q", user.OnboardingCurrentStep)
	}

	advance(user, StepAccountSetup) // self
	if user.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Fatalf("self advance moved marker to %q", user.OnboardingCurrentStep)
	}

	advance(user, StepCompleted) // legal
	if user.OnboardingCurrentStep != string(StepCompleted) {
		t.Fatalf("forward advance did not move marker, got %q", user.OnboardingCurrentStep)
	}

	advance(user, StepFinancialGoal) // backward from terminal
	if user.OnboardingCurrentStep != string(StepCompleted) {
		t.Fatalf("terminal marker regressed to %q", user.OnboardingCurrentStep)
	}
}

func TestSeedStep_FirstTouchOnly(t *testing.T) {
	user := &models.User{}
	seedStep(user, StepProfileSetup)
	if user.OnboardingCurrentStep != string(StepProfileSetup) {
		t.Fatalf("seedStep on empty marker got %q", user.OnboardingCurrentStep)
	}

	// an existing later marker is never overwritten
	seedStep(user, StepFinancialGoal)
	if user.OnboardingCurrentStep != string(StepProfileSetup) {
		t.Fatalf("seedStep overwrote marker, got %q", user.OnboardingCurrentStep)
	}
}

// An unknown marker is as good as no marker: constructing a form reclaims
// it, so a corrupted value restarts the flow rather than rejecting every
// submit.
func TestSeedStep_ReclaimsUnknownMarker(t *testing.T) {
	for _, marker := range []string{"garbage", "Completed", "step_4"} {
		user := &models.User{OnboardingCurrentStep: marker}
		seedStep(user, StepFinancialGoal)
		if user.OnboardingCurrentStep != string(StepFinancialGoal) {
			t.Errorf("seedStep on marker %q got %q, want %q",
				marker, user.OnboardingCurrentStep, StepFinancialGoal)
		}
	}
}
