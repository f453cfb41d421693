package handler

import (
	"net/http"

	"moneymap/internal/onboarding"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OnboardingHandler serves the step forms and the navigator.
type OnboardingHandler struct {
	DB *gorm.DB
}

func NewOnboardingHandler(db *gorm.DB) *OnboardingHandler {
	return &OnboardingHandler{DB: db}
}

// Next returns the destination for the user's current step.
func (h *OnboardingHandler) Next(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	util.Success(c, util.Response{
		"step": user.OnboardingCurrentStep,
		"next": onboarding.NextPath(user),
	})
}

// guardStep rejects submits for any step other than the user's current
// one: completed users are sent away (the forms are inert) and users on a
// different step are pointed at it. Returns false when the submit should
// not be processed.
func (h *OnboardingHandler) guardStep(c *gin.Context, step onboarding.Step) bool {
	user, _ := currentUser(c)
	if user == nil {
		return false
	}
	current := onboarding.Step(user.OnboardingCurrentStep)
	if current.Known() && current != step {
		util.Success(c, util.Response{
			"step": user.OnboardingCurrentStep,
			"next": onboarding.NextPath(user),
		})
		return false
	}
	return true
}

// SubmitFinancialGoal handles the first step.
func (h *OnboardingHandler) SubmitFinancialGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !h.guardStep(c, onboarding.StepFinancialGoal) {
		return
	}

	var payload onboarding.FinancialGoalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	form := onboarding.NewFinancialGoalForm(user, &payload)
	if !form.Submit(h.DB) {
		util.Invalid(c, form.Errors)
		return
	}

	util.Success(c, util.Response{
		"step": user.OnboardingCurrentStep,
		"next": onboarding.NextPath(user),
	})
}

// SubmitProfileSetup handles the second step.
func (h *OnboardingHandler) SubmitProfileSetup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !h.guardStep(c, onboarding.StepProfileSetup) {
		return
	}

	var payload onboarding.ProfileSetupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	form := onboarding.NewProfileSetupForm(user, &payload)
	if !form.Submit(h.DB) {
		util.Invalid(c, form.Errors)
		return
	}

	util.Success(c, util.Response{
		"step": user.OnboardingCurrentStep,
		"next": onboarding.NextPath(user),
	})
}

// SubmitAccountSetup handles the last step.
func (h *OnboardingHandler) SubmitAccountSetup(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if !h.guardStep(c, onboarding.StepAccountSetup) {
		return
	}

	var payload onboarding.AccountSetupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	form := onboarding.NewAccountSetupForm(user, &payload)
	if !form.Submit(h.DB) {
		util.Invalid(c, form.Errors)
		return
	}

	util.Success(c, util.Response{
		"step": user.OnboardingCurrentStep,
		"next": onboarding.NextPath(user),
	})
}
