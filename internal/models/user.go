package models

import "time"

// User represents application user.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DisplayName  string `gorm:"size:64"`

	// Onboarding progress marker. Holds one of the onboarding step
	// identifiers and only ever moves forward.
	OnboardingCurrentStep string `gorm:"size:32;index"`

	Country          string `gorm:"size:64"`
	Currency         string `gorm:"size:8"`
	IncomeFrequency  string `gorm:"size:16"`
	MainIncomeSource string `gorm:"size:32"`

	// Selected financial goal keys, stored as a JSON array.
	FinancialGoals []string `gorm:"serializer:json;type:text"`

	FailedLoginAttempts int        `gorm:"default:0"`
	LockedUntil         *time.Time `gorm:"index"`
	LastLoginAt         *time.Time
	LastLoginIP         string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
