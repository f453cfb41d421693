package handler

import (
	"moneymap/internal/onboarding"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current user, including onboarding progress.
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":                 user.ID,
			"username":           user.Username,
			"display_name":       user.DisplayName,
			"country":            user.Country,
			"currency":           user.Currency,
			"income_frequency":   user.IncomeFrequency,
			"main_income_source": user.MainIncomeSource,
			"financial_goals":    user.FinancialGoals,
			"onboarding": gin.H{
				"step": user.OnboardingCurrentStep,
				"next": onboarding.NextPath(user),
			},
			"created_at": user.CreatedAt,
		},
	})
}
