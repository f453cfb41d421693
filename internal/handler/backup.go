package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BackupHandler writes and serves JSON snapshots of a user's data.
type BackupHandler struct {
	DB        *gorm.DB
	BackupDir string
}

func NewBackupHandler(db *gorm.DB, backupDir string) *BackupHandler {
	return &BackupHandler{DB: db, BackupDir: backupDir}
}

// backupData is the snapshot file layout.
type backupData struct {
	UserID       uint                 `json:"user_id"`
	Created      time.Time            `json:"created"`
	Accounts     []models.Account     `json:"accounts"`
	Categories   []models.Category    `json:"categories"`
	Debts        []models.Debt        `json:"debts"`
	Transactions []models.Transaction `json:"transactions"`
}

// Create writes a snapshot of the current user's data to the backup dir
// and records it.
func (h *BackupHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	data := backupData{UserID: user.ID, Created: time.Now()}

	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&data.Accounts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}
	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&data.Categories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}
	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&data.Debts).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}
	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&data.Transactions).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	raw, err := json.MarshalIndent(&data, "", "  ")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to serialize")
		return
	}

	if err := os.MkdirAll(h.BackupDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create backup dir")
		return
	}

	fileName := fmt.Sprintf("backup-%d-%s.json", user.ID, uuid.New().String())
	filePath := filepath.Join(h.BackupDir, fileName)

	if err := os.WriteFile(filePath, raw, 0o600); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write backup file")
		return
	}

	info, _ := os.Stat(filePath)

	backup := models.Backup{
		UserID:   user.ID,
		FileName: fileName,
		FilePath: filePath,
		Size:     info.Size(),
	}
	if err := h.DB.Create(&backup).Error; err != nil {
		_ = os.Remove(filePath)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to record backup")
		return
	}

	util.Success(c, util.Response{
		"backup": gin.H{
			"id":         backup.ID,
			"file_name":  backup.FileName,
			"size":       backup.Size,
			"created_at": backup.CreatedAt,
		},
	})
}

// List returns the user's backups.
func (h *BackupHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var list []models.Backup
	if err := h.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		return
	}

	items := make([]gin.H, 0, len(list))
	for i := range list {
		b := &list[i]
		items = append(items, gin.H{
			"id":         b.ID,
			"file_name":  b.FileName,
			"size":       b.Size,
			"created_at": b.CreatedAt,
		})
	}

	util.Success(c, util.Response{"items": items})
}

// Download serves a backup file as an attachment.
func (h *BackupHandler) Download(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var backup models.Backup
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).
		First(&backup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query")
		}
		return
	}

	if _, err := os.Stat(backup.FilePath); err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "backup file missing")
		return
	}

	c.FileAttachment(backup.FilePath, backup.FileName)
}
