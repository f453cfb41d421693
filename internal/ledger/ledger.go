// Package ledger creates transaction rows with the amount sign normalized
// from the category kind.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moneymap/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Params describes one ledger row to create.
type Params struct {
	User        *models.User
	Category    *models.Category
	Account     *models.Account // optional
	Debt        *models.Debt    // optional
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Note        string
}

// ValidationError carries field-level messages for a row that failed
// validation before insert. The caller treats it as recoverable and rolls
// back its enclosing transaction.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	sort.Strings(parts)
	return "invalid transaction: " + strings.Join(parts, ", ")
}

// Kinds that force the stored sign. Anything in neither set (loan) passes
// the given sign through.
var (
	negativeKinds = map[string]bool{
		models.KindExpense:     true,
		models.KindTransferOut: true,
		models.KindDebtOut:     true,
	}
	positiveKinds = map[string]bool{
		models.KindIncome:     true,
		models.KindTransferIn: true,
		models.KindDebtIn:     true,
	}
)

// maxAmount bounds the magnitude of a single row. Amounts at or above it
// would be nonsense entries anyway, and the bound keeps the cents
// conversion far away from int64 overflow.
var maxAmount = decimal.NewFromInt(10000000)

// Cents converts a decimal amount to integer cents, rounding half away
// from zero.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// Normalize returns the cents to store for a category kind.
func Normalize(kind string, cents int64) int64 {
	abs := cents
	if abs < 0 {
		abs = -abs
	}
	switch {
	case negativeKinds[kind]:
		return -abs
	case positiveKinds[kind]:
		return abs
	default:
		return cents
	}
}

// Create validates and persists one ledger row. The stored sign comes from
// the category kind; the linked account's running balance is bumped by the
// stored amount in the same database handle (callers run this inside their
// own transaction). Nothing is persisted when validation fails, and the
// returned error is a *ValidationError in that case.
func Create(db *gorm.DB, p Params) (*models.Transaction, error) {
	fields := map[string][]string{}

	cents := Normalize(p.Category.Kind, Cents(p.Amount))
	if p.Amount.Abs().GreaterThanOrEqual(maxAmount) {
		fields["amount"] = append(fields["amount"], "amount too large")
	} else if cents == 0 {
		fields["amount"] = append(fields["amount"], "amount must not be zero")
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = append(fields["description"], "description is required")
	}
	if p.Date.IsZero() {
		fields["date"] = append(fields["date"], "date is required")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	row := &models.Transaction{
		UserID:      p.User.ID,
		CategoryID:  p.Category.ID,
		AmountCent:  cents,
		Date:        p.Date,
		Description: strings.TrimSpace(p.Description),
		Note:        p.Note,
	}
	if p.Account != nil {
		row.AccountID = &p.Account.ID
	}
	if p.Debt != nil {
		row.DebtID = &p.Debt.ID
	}

	if err := db.Create(row).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if p.Account != nil {
		if err := db.Model(&models.Account{}).
			Where("id = ?", p.Account.ID).
			Update("balance_cent", gorm.Expr("balance_cent + ?", cents)).Error; err != nil {
			return nil, fmt.Errorf("update account balance: %w", err)
		}
		p.Account.BalanceCent += cents
	}

	return row, nil
}
