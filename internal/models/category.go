package models

import "time"

// Category kinds. Directed kinds force the sign of the amounts stored
// against them; loan has no canonical direction and keeps the given sign.
const (
	KindIncome      = "income"
	KindExpense     = "expense"
	KindLoan        = "loan"
	KindDebtIn      = "debt_in"
	KindDebtOut     = "debt_out"
	KindTransferIn  = "transfer_in"
	KindTransferOut = "transfer_out"
)

var kinds = map[string]bool{
	KindIncome:      true,
	KindExpense:     true,
	KindLoan:        true,
	KindDebtIn:      true,
	KindDebtOut:     true,
	KindTransferIn:  true,
	KindTransferOut: true,
}

// ValidKind reports whether kind is one of the fixed category kinds.
func ValidKind(kind string) bool {
	return kinds[kind]
}

// Category classifies transactions for one user. Unique per
// (user, name, kind), name matched case-insensitively.
type Category struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_categories_user_name_kind"`
	Name   string `gorm:"type:TEXT COLLATE NOCASE;not null;uniqueIndex:idx_categories_user_name_kind"`
	Kind   string `gorm:"size:16;not null;uniqueIndex:idx_categories_user_name_kind"`

	// Optional budget goal in cents, >= 0.
	BudgetGoalCent int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
