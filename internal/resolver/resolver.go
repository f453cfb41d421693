// Package resolver implements the find-or-create lookups every
// transaction-creating flow goes through. Names are matched
// case-insensitively after trimming, scoped to the owning user; missing
// rows are created with zero-valued defaults. Existing rows are never
// mutated here.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"moneymap/internal/models"

	"gorm.io/gorm"
)

// Account finds the user's account by name or creates it with a zero
// balance. When two requests race to create the same name, the loser hits
// the unique constraint and re-fetches the row that won.
func Account(db *gorm.DB, user *models.User, name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("account name is empty")
	}

	var account models.Account
	err := db.Where("user_id = ? AND LOWER(name) = LOWER(?)", user.ID, name).
		First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find account: %w", err)
	}

	account = models.Account{UserID: user.ID, Name: name}
	if err := db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Account
			if err2 := db.Where("user_id = ? AND LOWER(name) = LOWER(?)", user.ID, name).
				First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &account, nil
}

// Category finds the user's category by name and kind or creates it with a
// zero budget goal. Same race handling as Account.
func Category(db *gorm.DB, user *models.User, name, kind string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is empty")
	}
	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("unknown category kind %q", kind)
	}

	var category models.Category
	err := db.Where("user_id = ? AND LOWER(name) = LOWER(?) AND kind = ?", user.ID, name, kind).
		First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find category: %w", err)
	}

	category = models.Category{UserID: user.ID, Name: name, Kind: kind}
	if err := db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Category
			if err2 := db.Where("user_id = ? AND LOWER(name) = LOWER(?) AND kind = ?", user.ID, name, kind).
				First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}
