package handler

import (
	"moneymap/internal/refdata"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
)

// Options returns the fixed option lists the onboarding screens need.
func Options(c *gin.Context) {
	util.Success(c, util.Response{
		"financial_goals":    refdata.Goals,
		"income_frequencies": refdata.IncomeFrequencies,
		"income_sources":     refdata.MainIncomeSources,
		"countries": gin.H{
			"priority": refdata.PriorityCountries,
			"all":      refdata.Countries,
		},
		"currencies": gin.H{
			"priority": refdata.PriorityCurrencies,
			"all":      refdata.Currencies,
			"default":  refdata.DefaultCurrency,
		},
	})
}
