// Package refdata exposes the fixed option lists used by the onboarding
// screens: countries, currencies, income frequencies, income sources and
// the financial-goal vocabulary. Pure lookups, no state.
package refdata

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is the fallback code when profile setup omits a currency.
const DefaultCurrency = "USD"

// Goals is the fixed vocabulary of financial-goal keys a user can select.
var Goals = []string{
	"save_for_emergency",
	"pay_off_debt",
	"buy_a_home",
	"save_for_retirement",
	"travel",
	"grow_wealth",
	"build_budget",
	"other",
}

var goalSet = toSet(Goals)

// ValidGoal reports whether key belongs to the goal vocabulary.
func ValidGoal(key string) bool {
	return goalSet[key]
}

// IncomeFrequencies lists how often a user's main income arrives.
var IncomeFrequencies = []string{
	"weekly",
	"biweekly",
	"monthly",
	"quarterly",
	"yearly",
	"irregular",
}

var incomeFrequencySet = toSet(IncomeFrequencies)

func ValidIncomeFrequency(key string) bool {
	return incomeFrequencySet[key]
}

// MainIncomeSources lists where a user's main income comes from.
var MainIncomeSources = []string{
	"salary",
	"business",
	"freelance",
	"investments",
	"pension",
	"other",
}

var mainIncomeSourceSet = toSet(MainIncomeSources)

func ValidMainIncomeSource(key string) bool {
	return mainIncomeSourceSet[key]
}

// Currencies is the curated list offered on the profile screen. Validation
// accepts any ISO code known to go-money, not just this subset.
var Currencies = []string{
	"USD", "EUR", "GBP", "JPY", "CNY", "INR", "CAD", "AUD", "CHF", "SEK",
	"NOK", "DKK", "PLN", "CZK", "BRL", "MXN", "ZAR", "SGD", "HKD", "NZD",
	"KRW", "TRY", "AED", "THB", "IDR", "PHP", "MYR", "VND", "NGN", "KES",
}

// PriorityCurrencies is the short list shown first.
var PriorityCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}

// ValidCurrency reports whether code is a known ISO currency code.
func ValidCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// Countries is the list offered on the profile screen.
var Countries = []string{
	"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada",
	"Chile", "China", "Colombia", "Czech Republic", "Denmark", "Egypt",
	"Finland", "France", "Germany", "Greece", "Hong Kong", "India",
	"Indonesia", "Ireland", "Italy", "Japan", "Kenya", "Malaysia", "Mexico",
	"Netherlands", "New Zealand", "Nigeria", "Norway", "Philippines",
	"Poland", "Portugal", "Singapore", "South Africa", "South Korea",
	"Spain", "Sweden", "Switzerland", "Thailand", "Turkey",
	"United Arab Emirates", "United Kingdom", "United States", "Vietnam",
}

// PriorityCountries is the short list shown first.
var PriorityCountries = []string{
	"United States", "United Kingdom", "Canada", "Australia", "Germany",
	"France",
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
