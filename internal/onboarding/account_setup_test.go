package onboarding

import (
	"encoding/json"
	"strings"
	"testing"

	"moneymap/internal/models"
)

// A mix of good and bad lines: the good line persists, the blank-name and
// non-positive lines are silently skipped, and the marker completes.
func TestAccountSetupSubmit_SkipsBadLinesSilently(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepAccountSetup)

	form := NewAccountSetupForm(user, &AccountSetupPayload{
		Lines: AccountLines{
			{AccountName: "Cash", Amount: "100"},
			{AccountName: "", Amount: "50"},
			{AccountName: "Bank", Amount: "-5"},
		},
	})

	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var txCount int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount)
	if txCount != 1 {
		t.Fatalf("transaction count = %d, want 1", txCount)
	}

	var accounts []models.Account
	db.Where("user_id = ?", user.ID).Find(&accounts)
	if len(accounts) != 1 || accounts[0].Name != "Cash" {
		t.Fatalf("accounts = %+v, want exactly one named Cash", accounts)
	}
	if accounts[0].BalanceCent != 10000 {
		t.Errorf("balance_cent = %d, want 10000", accounts[0].BalanceCent)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepCompleted) {
		t.Errorf("step = %q, want %q", fresh.OnboardingCurrentStep, StepCompleted)
	}
}

// All lines failing the skip predicate is the one case that errors: a
// single base message, nothing persisted, marker unchanged.
func TestAccountSetupSubmit_AllLinesSkipped(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepAccountSetup)

	form := NewAccountSetupForm(user, &AccountSetupPayload{
		Lines: AccountLines{
			{AccountName: "", Amount: "50"},
			{AccountName: "Bank", Amount: "0"},
			{AccountName: "Wallet", Amount: "not-a-number"},
		},
	})

	if form.Submit(db) {
		t.Fatal("Submit() = true, want false")
	}
	if msgs := form.Errors[BaseField]; len(msgs) != 1 {
		t.Fatalf("base errors = %v, want exactly one", msgs)
	}

	var txCount, accountCount int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount)
	db.Model(&models.Account{}).Where("user_id = ?", user.ID).Count(&accountCount)
	if txCount != 0 || accountCount != 0 {
		t.Fatalf("persisted %d transactions, %d accounts, want none", txCount, accountCount)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Errorf("step = %q, want unchanged %q", fresh.OnboardingCurrentStep, StepAccountSetup)
	}
}

// Two lines naming the same account (modulo case) must resolve to one row,
// not two.
func TestAccountSetupSubmit_SameAccountSharedAcrossLines(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepAccountSetup)

	form := NewAccountSetupForm(user, &AccountSetupPayload{
		Lines: AccountLines{
			{AccountName: "Cash", Amount: "100"},
			{AccountName: "cash", Amount: "25.50"},
		},
	})

	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var accounts []models.Account
	db.Where("user_id = ?", user.ID).Find(&accounts)
	if len(accounts) != 1 {
		t.Fatalf("account count = %d, want 1", len(accounts))
	}
	if accounts[0].BalanceCent != 12550 {
		t.Errorf("balance_cent = %d, want 12550", accounts[0].BalanceCent)
	}

	var txCount int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount)
	if txCount != 2 {
		t.Errorf("transaction count = %d, want 2", txCount)
	}

	// both rows share the single opening-balance category
	var catCount int64
	db.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&catCount)
	if catCount != 1 {
		t.Errorf("category count = %d, want 1", catCount)
	}
}

// An amount past the sanity cap would wrap through the cents conversion,
// so such lines are skipped like any other unusable amount and can never
// reach storage.
func TestAccountSetupSubmit_OversizedAmountNeverStored(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepAccountSetup)

	form := NewAccountSetupForm(user, &AccountSetupPayload{
		Lines: AccountLines{
			{AccountName: "Vault", Amount: "200000000000000000"},
		},
	})

	if form.Submit(db) {
		t.Fatal("Submit() = true, want false")
	}
	if msgs := form.Errors[BaseField]; len(msgs) != 1 {
		t.Fatalf("base errors = %v, want exactly one", msgs)
	}

	var txCount, accountCount int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&txCount)
	db.Model(&models.Account{}).Where("user_id = ?", user.ID).Count(&accountCount)
	if txCount != 0 || accountCount != 0 {
		t.Fatalf("persisted %d transactions, %d accounts, want none", txCount, accountCount)
	}

	var fresh models.User
	db.First(&fresh, user.ID)
	if fresh.OnboardingCurrentStep != string(StepAccountSetup) {
		t.Errorf("step = %q, want unchanged %q", fresh.OnboardingCurrentStep, StepAccountSetup)
	}
}

func TestAccountSetupSubmit_LedgerRowShape(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, StepAccountSetup)

	form := NewAccountSetupForm(user, &AccountSetupPayload{
		Lines: AccountLines{{AccountName: "Savings", Amount: "42.10", TransactionDate: "2026-01-15"}},
	})
	if !form.Submit(db) {
		t.Fatalf("Submit() = false, errors = %v", form.Errors)
	}

	var row models.Transaction
	if err := db.Preload("Category").Where("user_id = ?", user.ID).First(&row).Error; err != nil {
		t.Fatalf("load transaction: %v", err)
	}
	if row.AmountCent != 4210 {
		t.Errorf("amount_cent = %d, want 4210", row.AmountCent)
	}
	if !strings.Contains(row.Description, "Savings") {
		t.Errorf("description = %q, want it to name the account", row.Description)
	}
	if row.Category.Name != OpeningCategoryName || row.Category.Kind != OpeningCategoryKind {
		t.Errorf("category = %q/%q, want %q/%q",
			row.Category.Name, row.Category.Kind, OpeningCategoryName, OpeningCategoryKind)
	}
	if got := row.Date.Format("2006-01-02"); got != "2026-01-15" {
		t.Errorf("date = %q, want 2026-01-15", got)
	}
}

func TestNewAccountSetupForm_DefaultsToOneBlankLine(t *testing.T) {
	user := &models.User{OnboardingCurrentStep: string(StepAccountSetup)}

	for _, payload := range []*AccountSetupPayload{nil, {}} {
		form := NewAccountSetupForm(user, payload)
		if len(form.Lines) != 1 || form.Lines[0] != (AccountLine{}) {
			t.Errorf("Lines = %+v, want one blank line", form.Lines)
		}
	}
}

// The nested payload arrives either as an array or as an object keyed by
// line index. Integer indices and client placeholder tokens are equally
// meaningless; only the values matter.
func TestAccountLines_UnmarshalBothShapes(t *testing.T) {
	array := `[{"account_name":"Cash","amount":"100"},{"account_name":"Bank","amount":"20"}]`
	keyed := `{"0":{"account_name":"Cash","amount":"100"},"__new_1__":{"account_name":"Bank","amount":"20"}}`

	for _, raw := range []string{array, keyed} {
		var lines AccountLines
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if len(lines) != 2 {
			t.Fatalf("parsed %d lines from %s, want 2", len(lines), raw)
		}
		names := map[string]bool{}
		for _, l := range lines {
			names[l.AccountName] = true
		}
		if !names["Cash"] || !names["Bank"] {
			t.Errorf("parsed names %v, want Cash and Bank", names)
		}
	}
}

func TestSkipLine(t *testing.T) {
	testCases := []struct {
		line AccountLine
		skip bool
	}{
		{AccountLine{AccountName: "Cash", Amount: "100"}, false},
		{AccountLine{AccountName: "Cash", Amount: "0.01"}, false},
		{AccountLine{AccountName: "  ", Amount: "100"}, true},
		{AccountLine{AccountName: "Cash", Amount: "0"}, true},
		{AccountLine{AccountName: "Cash", Amount: "-5"}, true},
		{AccountLine{AccountName: "Cash", Amount: ""}, true},
		{AccountLine{AccountName: "Cash", Amount: "abc"}, true},
		{AccountLine{AccountName: "Cash", Amount: "9999999.99"}, false},
		{AccountLine{AccountName: "Cash", Amount: "10000000"}, true},
		{AccountLine{AccountName: "Cash", Amount: "200000000000000000"}, true},
	}

	for _, tc := range testCases {
		if got := skipLine(tc.line); got != tc.skip {
			t.Errorf("skipLine(%+v) = %v, want %v", tc.line, got, tc.skip)
		}
	}
}
