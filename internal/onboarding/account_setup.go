package onboarding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"moneymap/internal/ledger"
	"moneymap/internal/models"
	"moneymap/internal/resolver"
	"moneymap/internal/util"

	"gorm.io/gorm"
)

// Category every opening-balance row is filed under.
const (
	OpeningCategoryName = "Opening balance"
	OpeningCategoryKind = models.KindTransferIn
)

// AccountLine is one row of the account-setup screen.
type AccountLine struct {
	AccountName     string `json:"account_name"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transaction_date"`
}

// AccountLines accepts the nested payload either as a JSON array or as an
// object keyed by line index. Clients historically sent integer indices or
// a placeholder token for unsaved lines; the key carries no meaning beyond
// "distinct line", so only the values survive parsing.
type AccountLines []AccountLine

func (l *AccountLines) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var lines []AccountLine
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*l = lines
		return nil
	}

	var keyed map[string]AccountLine
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys) // stable iteration; order is not significant
	lines := make(AccountLines, 0, len(keyed))
	for _, k := range keys {
		lines = append(lines, keyed[k])
	}
	*l = lines
	return nil
}

// AccountSetupPayload is the submitted input for the last step.
type AccountSetupPayload struct {
	Lines AccountLines `json:"lines"`
}

// AccountSetupForm persists the user's initial account balances: one
// found-or-created account plus one opening-balance ledger row per
// surviving line, then marks onboarding completed. All writes share one
// transaction.
type AccountSetupForm struct {
	User   *models.User
	Lines  []AccountLine
	Errors Errors
}

// NewAccountSetupForm seeds lines from the payload; with no payload the
// form shows exactly one blank line.
func NewAccountSetupForm(user *models.User, payload *AccountSetupPayload) *AccountSetupForm {
	form := &AccountSetupForm{User: user, Errors: Errors{}}
	if payload != nil && len(payload.Lines) > 0 {
		form.Lines = payload.Lines
	} else {
		form.Lines = []AccountLine{{}}
	}
	seedStep(user, StepAccountSetup)
	return form
}

// skipLine is the skip predicate: lines with a blank name or without a
// parseable, strictly positive amount under the sanity cap are silently
// dropped at submission time rather than reported as field errors.
func skipLine(line AccountLine) bool {
	if strings.TrimSpace(line.AccountName) == "" {
		return true
	}
	_, err := util.ParseAmount(line.Amount)
	return err != nil
}

// Validate requires at least one line that survives the skip predicate.
// Skipped lines are not an error on their own.
func (f *AccountSetupForm) Validate() bool {
	f.Errors = Errors{}
	for _, line := range f.Lines {
		if !skipLine(line) {
			return true
		}
	}
	f.Errors.AddBase("add at least one account with a name and a positive amount")
	return false
}

// Submit persists every surviving line and advances the marker to
// completed in a single transaction. Two lines naming the same account
// resolve to the same row. Any failure rolls back every line already
// inserted in this call and leaves the marker untouched.
func (f *AccountSetupForm) Submit(db *gorm.DB) bool {
	if !f.Validate() {
		return false
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, line := range f.Lines {
			if skipLine(line) {
				continue
			}

			account, err := resolver.Account(tx, f.User, line.AccountName)
			if err != nil {
				return err
			}
			category, err := resolver.Category(tx, f.User, OpeningCategoryName, OpeningCategoryKind)
			if err != nil {
				return err
			}

			amount, err := util.ParseAmount(line.Amount)
			if err != nil {
				return err
			}

			if _, err := ledger.Create(tx, ledger.Params{
				User:        f.User,
				Category:    category,
				Account:     account,
				Amount:      amount,
				Date:        lineDate(line),
				Description: fmt.Sprintf("Opening balance for %s", account.Name),
			}); err != nil {
				return err
			}
		}

		advance(f.User, StepCompleted)
		return tx.Save(f.User).Error
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			f.Errors.Merge(verr.Fields)
		} else {
			f.Errors.AddBase(err.Error())
		}
		return false
	}
	return true
}

// lineDate parses the line's transaction date, defaulting to today.
func lineDate(line AccountLine) time.Time {
	raw := strings.TrimSpace(line.TransactionDate)
	if raw == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
