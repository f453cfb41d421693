package models

import "time"

// Debt directions and statuses.
const (
	DebtLent     = "lent"
	DebtBorrowed = "borrowed"

	DebtOngoing = "ongoing"
	DebtPaid    = "paid"
)

// Debt tracks money lent to or borrowed from a counterparty.
type Debt struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"index;not null"`
	Counterparty string `gorm:"size:64;not null"`
	Direction    string `gorm:"size:16;not null"` // lent / borrowed
	Status       string `gorm:"size:16;not null;default:ongoing"`

	TotalLentCent       int64 `gorm:"not null;default:0"`
	TotalReimbursedCent int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// RemainingCent is how much of the debt is still open.
func (d *Debt) RemainingCent() int64 {
	return d.TotalLentCent - d.TotalReimbursedCent
}
