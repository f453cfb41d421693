package handler

import (
	"errors"
	"net/http"
	"strconv"

	"moneymap/internal/ledger"
	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler serves account and category listings.
type AccountHandler struct {
	DB *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{DB: db}
}

// List returns the user's accounts with balances and saving goals.
func (h *AccountHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var accounts []models.Account
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	items := make([]gin.H, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		items = append(items, gin.H{
			"id":               a.ID,
			"name":             a.Name,
			"balance_cent":     a.BalanceCent,
			"balance":          formatCents(a.BalanceCent),
			"saving_goal_cent": a.SavingGoalCent,
			"saving_goal":      formatCents(a.SavingGoalCent),
			"created_at":       a.CreatedAt,
		})
	}

	util.Success(c, util.Response{"items": items})
}

type savingGoalReq struct {
	SavingGoal string `json:"saving_goal" binding:"required"`
}

// UpdateSavingGoal sets an account's saving goal (>= 0).
func (h *AccountHandler) UpdateSavingGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req savingGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	goal, err := util.ParseAmount(req.SavingGoal)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid goal amount")
		return
	}

	var account models.Account
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		}
		return
	}

	account.SavingGoalCent = ledger.Cents(goal)
	if err := h.DB.Model(&account).Update("saving_goal_cent", account.SavingGoalCent).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save, try again")
		return
	}

	util.Success(c, util.Response{
		"account": gin.H{
			"id":               account.ID,
			"name":             account.Name,
			"saving_goal_cent": account.SavingGoalCent,
			"saving_goal":      formatCents(account.SavingGoalCent),
		},
	})
}

// ListCategories returns the user's categories with budget goals.
func (h *AccountHandler) ListCategories(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var categories []models.Category
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("kind ASC, name ASC").
		Find(&categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	items := make([]gin.H, 0, len(categories))
	for i := range categories {
		cat := &categories[i]
		items = append(items, gin.H{
			"id":               cat.ID,
			"name":             cat.Name,
			"kind":             cat.Kind,
			"budget_goal_cent": cat.BudgetGoalCent,
			"budget_goal":      formatCents(cat.BudgetGoalCent),
		})
	}

	util.Success(c, util.Response{"items": items})
}
