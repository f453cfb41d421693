package onboarding

import (
	"fmt"
	"strings"

	"moneymap/internal/models"
	"moneymap/internal/refdata"

	"gorm.io/gorm"
)

// ProfileSetupPayload is the submitted input for the second step. Nil
// pointers mean "not submitted", so stored values survive a re-display.
type ProfileSetupPayload struct {
	Country          *string `json:"country"`
	Currency         *string `json:"currency"`
	IncomeFrequency  *string `json:"income_frequency"`
	MainIncomeSource *string `json:"main_income_source"`
}

// ProfileSetupForm validates and persists the user's profile attributes.
type ProfileSetupForm struct {
	User             *models.User
	Country          string
	Currency         string
	IncomeFrequency  string
	MainIncomeSource string
	Errors           Errors
}

// NewProfileSetupForm seeds values from the payload where present, else
// from the user's stored profile. Currency falls back to the default code
// when neither is set.
func NewProfileSetupForm(user *models.User, payload *ProfileSetupPayload) *ProfileSetupForm {
	form := &ProfileSetupForm{
		User:             user,
		Country:          user.Country,
		Currency:         user.Currency,
		IncomeFrequency:  user.IncomeFrequency,
		MainIncomeSource: user.MainIncomeSource,
		Errors:           Errors{},
	}
	if payload != nil {
		if payload.Country != nil {
			form.Country = strings.TrimSpace(*payload.Country)
		}
		if payload.Currency != nil {
			form.Currency = strings.ToUpper(strings.TrimSpace(*payload.Currency))
		}
		if payload.IncomeFrequency != nil {
			form.IncomeFrequency = strings.TrimSpace(*payload.IncomeFrequency)
		}
		if payload.MainIncomeSource != nil {
			form.MainIncomeSource = strings.TrimSpace(*payload.MainIncomeSource)
		}
	}
	if form.Currency == "" {
		form.Currency = refdata.DefaultCurrency
	}
	seedStep(user, StepProfileSetup)
	return form
}

// Validate checks country presence and the enumerated fields.
func (f *ProfileSetupForm) Validate() bool {
	f.Errors = Errors{}
	if f.Country == "" {
		f.Errors.Add("country", "country is required")
	}
	if f.Currency == "" {
		f.Errors.Add("currency", "currency is required")
	} else if !refdata.ValidCurrency(f.Currency) {
		f.Errors.Add("currency", fmt.Sprintf("unknown currency code %q", f.Currency))
	}
	if f.IncomeFrequency != "" && !refdata.ValidIncomeFrequency(f.IncomeFrequency) {
		f.Errors.Add("income_frequency", fmt.Sprintf("unknown income frequency %q", f.IncomeFrequency))
	}
	if f.MainIncomeSource != "" && !refdata.ValidMainIncomeSource(f.MainIncomeSource) {
		f.Errors.Add("main_income_source", fmt.Sprintf("unknown income source %q", f.MainIncomeSource))
	}
	return f.Errors.Empty()
}

// Submit copies the fields onto the user, advances the step marker and
// saves, all or nothing. Resubmitting identical values is safe: the save
// is a no-op update and the marker cannot move past the next step.
func (f *ProfileSetupForm) Submit(db *gorm.DB) bool {
	if !f.Validate() {
		return false
	}

	f.User.Country = f.Country
	f.User.Currency = f.Currency
	f.User.IncomeFrequency = f.IncomeFrequency
	f.User.MainIncomeSource = f.MainIncomeSource
	advance(f.User, StepAccountSetup)

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
