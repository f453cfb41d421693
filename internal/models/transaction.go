package models

import "time"

// Transaction is a single signed ledger row.
type Transaction struct {
	ID         uint  `gorm:"primaryKey"`
	UserID     uint  `gorm:"index;not null"`
	CategoryID uint  `gorm:"index;not null"`
	AccountID  *uint `gorm:"index"`
	DebtID     *uint `gorm:"index"`

	// Signed amount in cents; never zero. The sign is derived from the
	// category kind, not taken verbatim from user input.
	AmountCent int64 `gorm:"not null"`

	Date        time.Time `gorm:"index;not null"`
	Description string    `gorm:"size:255;not null"`
	Note        string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Category Category `gorm:"constraint:OnDelete:CASCADE"`
	Account  *Account `gorm:"constraint:OnDelete:SET NULL"`
	Debt     *Debt    `gorm:"constraint:OnDelete:SET NULL"`
}
