package models

import "time"

// Account belongs to exactly one user. The name is unique per user,
// case-insensitive (NOCASE collation + compound unique index), so two
// requests racing to create the same name hit a constraint instead of
// inserting twice.
type Account struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_accounts_user_name"`
	Name   string `gorm:"type:TEXT COLLATE NOCASE;not null;uniqueIndex:idx_accounts_user_name"`

	// Running balance in cents. Bumped when a transaction is created
	// against this account; never recomputed from the ledger.
	BalanceCent int64 `gorm:"not null;default:0"`

	// Optional saving goal in cents, >= 0.
	SavingGoalCent int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
