package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moneymap/internal/ledger"
	"moneymap/internal/models"
	"moneymap/internal/resolver"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DebtHandler serves debt tracking: money lent to or borrowed from a
// counterparty, reimbursed over time.
type DebtHandler struct {
	DB *gorm.DB
}

func NewDebtHandler(db *gorm.DB) *DebtHandler {
	return &DebtHandler{DB: db}
}

type createDebtReq struct {
	Counterparty string `json:"counterparty" binding:"required,max=64"`
	Direction    string `json:"direction" binding:"required,oneof=lent borrowed"`
	Amount       string `json:"amount" binding:"required"`
	Account      string `json:"account" binding:"max=64"` // optional
	Date         string `json:"date"`
	Note         string `json:"note" binding:"max=255"`
}

func debtResp(d *models.Debt) gin.H {
	return gin.H{
		"id":                    d.ID,
		"counterparty":          d.Counterparty,
		"direction":             d.Direction,
		"status":                d.Status,
		"total_lent_cent":       d.TotalLentCent,
		"total_lent":            formatCents(d.TotalLentCent),
		"total_reimbursed_cent": d.TotalReimbursedCent,
		"total_reimbursed":      formatCents(d.TotalReimbursedCent),
		"remaining_cent":        d.RemainingCent(),
		"remaining":             formatCents(d.RemainingCent()),
		"created_at":            d.CreatedAt,
	}
}

// debtKind picks the directed category kind for a debt movement. Opening
// a lent debt moves money out; a reimbursement on it moves money back in.
// Borrowed debts mirror that.
func debtKind(direction string, reimbursement bool) string {
	out := direction == models.DebtLent
	if reimbursement {
		out = !out
	}
	if out {
		return models.KindDebtOut
	}
	return models.KindDebtIn
}

// Create opens a debt and records the ledger row for the initial
// movement, both in one transaction.
func (h *DebtHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createDebtReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	amount, err := util.ParseAmount(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid amount")
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, err = util.ParseDate(req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date, use YYYY-MM-DD")
			return
		}
	}

	debt := models.Debt{
		UserID:        user.ID,
		Counterparty:  strings.TrimSpace(req.Counterparty),
		Direction:     req.Direction,
		Status:        models.DebtOngoing,
		TotalLentCent: ledger.Cents(amount),
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&debt).Error; err != nil {
			return err
		}

		var account *models.Account
		if strings.TrimSpace(req.Account) != "" {
			account, err = resolver.Account(tx, user, req.Account)
			if err != nil {
				return err
			}
		}

		kind := debtKind(req.Direction, false)
		category, err := resolver.Category(tx, user, debt.Counterparty, kind)
		if err != nil {
			return err
		}

		verb := "Lent to"
		if req.Direction == models.DebtBorrowed {
			verb = "Borrowed from"
		}

		_, err = ledger.Create(tx, ledger.Params{
			User:        user,
			Category:    category,
			Account:     account,
			Debt:        &debt,
			Amount:      amount,
			Date:        date,
			Description: fmt.Sprintf("%s %s", verb, debt.Counterparty),
			Note:        req.Note,
		})
		return err
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			util.Invalid(c, verr.Fields)
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save, try again")
		return
	}

	util.Success(c, util.Response{"debt": debtResp(&debt)})
}

// List returns the user's debts, optionally filtered by status.
func (h *DebtHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := h.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status == models.DebtOngoing || status == models.DebtPaid {
		query = query.Where("status = ?", status)
	}

	var debts []models.Debt
	if err := query.Order("created_at DESC").Find(&debts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	items := make([]gin.H, 0, len(debts))
	for i := range debts {
		items = append(items, debtResp(&debts[i]))
	}

	util.Success(c, util.Response{"items": items})
}

type debtPaymentReq struct {
	Amount  string `json:"amount" binding:"required"`
	Account string `json:"account" binding:"max=64"` // optional
	Date    string `json:"date"`
	Note    string `json:"note" binding:"max=255"`
}

// AddPayment records a reimbursement on a debt: one ledger row plus the
// updated totals, flipping the status to paid when nothing remains.
func (h *DebtHandler) AddPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req debtPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	amount, err := util.ParseAmount(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "enter a valid amount")
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, err = util.ParseDate(req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date, use YYYY-MM-DD")
			return
		}
	}

	var debt models.Debt
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "debt not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var account *models.Account
		if strings.TrimSpace(req.Account) != "" {
			account, err = resolver.Account(tx, user, req.Account)
			if err != nil {
				return err
			}
		}

		kind := debtKind(debt.Direction, true)
		category, err := resolver.Category(tx, user, debt.Counterparty, kind)
		if err != nil {
			return err
		}

		if _, err := ledger.Create(tx, ledger.Params{
			User:        user,
			Category:    category,
			Account:     account,
			Debt:        &debt,
			Amount:      amount,
			Date:        date,
			Description: fmt.Sprintf("Reimbursement: %s", debt.Counterparty),
			Note:        req.Note,
		}); err != nil {
			return err
		}

		debt.TotalReimbursedCent += ledger.Cents(amount)
		if debt.RemainingCent() <= 0 {
			debt.Status = models.DebtPaid
		}
		return tx.Save(&debt).Error
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			util.Invalid(c, verr.Fields)
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save, try again")
		return
	}

	util.Success(c, util.Response{"debt": debtResp(&debt)})
}
