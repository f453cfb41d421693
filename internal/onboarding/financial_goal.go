package onboarding

import (
	"fmt"
	"strings"

	"moneymap/internal/models"
	"moneymap/internal/refdata"

	"gorm.io/gorm"
)

// FinancialGoalPayload is the submitted input for the first step.
type FinancialGoalPayload struct {
	FinancialGoals []string `json:"financial_goals"`
}

// FinancialGoalForm validates and persists the user's selected goals.
type FinancialGoalForm struct {
	User   *models.User
	Goals  []string
	Errors Errors
}

// NewFinancialGoalForm seeds current values from the payload if present,
// else from the user's stored goals (idempotent re-display).
func NewFinancialGoalForm(user *models.User, payload *FinancialGoalPayload) *FinancialGoalForm {
	form := &FinancialGoalForm{User: user, Errors: Errors{}}
	if payload != nil && payload.FinancialGoals != nil {
		form.Goals = payload.FinancialGoals
	} else {
		form.Goals = user.FinancialGoals
	}
	seedStep(user, StepFinancialGoal)
	return form
}

// Validate checks the goal set: non-empty, every key from the fixed
// vocabulary. Foreign keys are named in the field error.
func (f *FinancialGoalForm) Validate() bool {
	f.Errors = Errors{}
	if len(f.Goals) == 0 {
		f.Errors.Add("financial_goals", "select at least one goal")
		return false
	}
	var unknown []string
	for _, goal := range f.Goals {
		if !refdata.ValidGoal(goal) {
			unknown = append(unknown, goal)
		}
	}
	if len(unknown) > 0 {
		f.Errors.Add("financial_goals",
			fmt.Sprintf("unknown goal(s): %s", strings.Join(unknown, ", ")))
	}
	return f.Errors.Empty()
}

// Submit assigns the goals onto the user, advances the step marker and
// saves, all or nothing. Returns false with errors recorded on failure.
func (f *FinancialGoalForm) Submit(db *gorm.DB) bool {
	if !f.Validate() {
		return false
	}

	f.User.FinancialGoals = f.Goals
	advance(f.User, StepProfileSetup)

	if userErrs := validateUser(f.User); !userErrs.Empty() {
		f.Errors.Merge(userErrs)
		return false
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(f.User).Error
	})
	if err != nil {
		f.Errors.AddBase(err.Error())
		return false
	}
	return true
}
