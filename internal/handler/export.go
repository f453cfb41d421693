package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"moneymap/internal/models"
	"moneymap/internal/refdata"
	"moneymap/internal/util"

	"github.com/Rhymond/go-money"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler writes the user's transactions as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Date", "Description", "Category", "Kind", "Amount", "Note"}

func (h *ExportHandler) load(user *models.User) ([]models.Transaction, error) {
	var rows []models.Transaction
	err := h.DB.Preload("Category").
		Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// displayAmount formats signed cents in the user's currency.
func displayAmount(user *models.User, cents int64) string {
	code := user.Currency
	if code == "" || money.GetCurrency(code) == nil {
		code = refdata.DefaultCurrency
	}
	return money.New(cents, code).Display()
}

func exportRow(user *models.User, t *models.Transaction) []string {
	return []string{
		t.Date.Format("2006-01-02"),
		t.Description,
		t.Category.Name,
		t.Category.Kind,
		displayAmount(user, t.AmountCent),
		t.Note,
	}
}

// CSV streams the transactions as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.load(user)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for i := range rows {
		writer.Write(exportRow(user, &rows[i]))
	}
}

// XLSX streams the transactions as an Excel workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.load(user)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range rows {
		values := exportRow(user, &rows[idx])
		for col, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, idx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to export")
	}
}
