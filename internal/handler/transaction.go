package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moneymap/internal/ledger"
	"moneymap/internal/models"
	"moneymap/internal/resolver"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler serves the ledger endpoints.
type TransactionHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewTransactionHandler(db *gorm.DB, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TransactionHandler{DB: db, PageSize: pageSize}
}

type createTransactionReq struct {
	Account     string `json:"account" binding:"max=64"` // optional account name
	Category    string `json:"category" binding:"required,max=64"`
	Kind        string `json:"kind" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date"`
	Description string `json:"description" binding:"required,max=255"`
	Note        string `json:"note" binding:"max=255"`
	DebtID      *uint  `json:"debt_id"`
}

type transactionResp struct {
	ID          uint      `json:"id"`
	AccountID   *uint     `json:"account_id,omitempty"`
	CategoryID  uint      `json:"category_id"`
	DebtID      *uint     `json:"debt_id,omitempty"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		DebtID:      t.DebtID,
		AmountCent:  t.AmountCent,
		Amount:      formatCents(t.AmountCent),
		Date:        t.Date,
		Description: t.Description,
		Note:        t.Note,
		CreatedAt:   t.CreatedAt,
	}
}

// Create records one transaction. The account is optional; account and
// category are resolved find-or-create by name, and the stored sign comes
// from the category kind.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	if !models.ValidKind(req.Kind) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown category kind")
		return
	}

	// negative input is allowed; the stored sign is normalized per kind
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
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
	if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date cannot be in the future")
		return
	}

	var debt *models.Debt
	if req.DebtID != nil {
		debt = &models.Debt{}
		if err := h.DB.Where("id = ? AND user_id = ?", *req.DebtID, user.ID).
			First(debt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Error(c, http.StatusNotFound, util.CodeNotFound, "debt not found")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load debt")
			}
			return
		}
	}

	var row *models.Transaction
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var account *models.Account
		if strings.TrimSpace(req.Account) != "" {
			account, err = resolver.Account(tx, user, req.Account)
			if err != nil {
				return err
			}
		}
		category, err := resolver.Category(tx, user, req.Category, req.Kind)
		if err != nil {
			return err
		}
		row, err = ledger.Create(tx, ledger.Params{
			User:        user,
			Category:    category,
			Account:     account,
			Debt:        debt,
			Amount:      amount,
			Date:        date,
			Description: req.Description,
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

	util.Success(c, util.Response{
		"transaction": toTransactionResp(row),
	})
}

// List returns transactions with date range, kind and category filters,
// paging, sorting and summary totals.
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, size, offset := pageParams(c, h.PageSize)

	var (
		startTime time.Time
		endTime   time.Time
		hasStart  bool
		hasEnd    bool
		err       error
	)

	if s := c.Query("start"); s != "" {
		startTime, err = time.Parse("2006-01-02", s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid start date, use YYYY-MM-DD")
			return
		}
		hasStart = true
	}
	if s := c.Query("end"); s != "" {
		endTime, err = time.Parse("2006-01-02", s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid end date, use YYYY-MM-DD")
			return
		}
		// end date is inclusive: < end+1 day
		endTime = endTime.Add(24 * time.Hour)
		hasEnd = true
	}

	// default to the last 30 days when no range given
	if !hasStart && !hasEnd {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		startTime = today.AddDate(0, 0, -29)
		endTime = today.AddDate(0, 0, 1)
		hasStart, hasEnd = true, true
	}

	kind := c.Query("kind")
	if !models.ValidKind(kind) {
		kind = ""
	}

	var categoryID uint64
	if s := c.Query("category_id"); s != "" {
		categoryID, _ = strconv.ParseUint(s, 10, 64)
	}

	sortKey := c.DefaultQuery("sort", "date_desc")
	orderBy := "date DESC, id DESC"
	switch sortKey {
	case "date_asc":
		orderBy = "date ASC, id ASC"
	case "amount_desc":
		orderBy = "amount_cent DESC, id DESC"
	case "amount_asc":
		orderBy = "amount_cent ASC, id ASC"
	}

	base := h.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if hasStart {
		base = base.Where("date >= ?", startTime)
	}
	if hasEnd {
		base = base.Where("date < ?", endTime)
	}
	if kind != "" {
		base = base.Joins("JOIN categories ON categories.id = transactions.category_id").
			Where("categories.kind = ?", kind)
	}
	if categoryID > 0 {
		base = base.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	var rows []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Order(orderBy).
		Limit(size).
		Offset(offset).
		Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	items := make([]transactionResp, 0, len(rows))
	for i := range rows {
		items = append(items, toTransactionResp(&rows[i]))
	}

	// summary under the same filters: signed amounts split by direction
	var all []models.Transaction
	if err := base.Session(&gorm.Session{}).Find(&all).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to summarize")
		return
	}

	var inCent, outCent int64
	for i := range all {
		if all[i].AmountCent >= 0 {
			inCent += all[i].AmountCent
		} else {
			outCent += -all[i].AmountCent
		}
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
		"summary": gin.H{
			"total_in_cent":  inCent,
			"total_in":       formatCents(inCent),
			"total_out_cent": outCent,
			"total_out":      formatCents(outCent),
			"net_cent":       inCent - outCent,
			"net":            formatCents(inCent - outCent),
		},
	})
}

// Delete removes one of the user's transactions. The stored account
// balance is deliberately left alone (it only moves on creation).
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	if err := h.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Transaction{}).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete")
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
