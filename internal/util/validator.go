package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered decimal amount. The value must be
// positive and below the sanity cap.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
		return decimal.Zero, fmt.Errorf("amount too large, got %s", amount)
	}
	return amount, nil
}

// ParseDate parses a submitted date, accepting RFC3339 and plain date
// forms.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", s)
}

// ValidateName validates a free-text name (account, category,
// counterparty): non-blank and within the length cap.
func ValidateName(name string, max int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is empty")
	}
	if len(name) > max {
		return fmt.Errorf("name too long, max %d characters", max)
	}
	return nil
}
