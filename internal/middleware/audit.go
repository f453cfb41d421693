package middleware

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"

	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func encryptField(encryptKey, plain string) (string, error) {
	if plain == "" || encryptKey == "" {
		return plain, nil
	}
	b, err := util.EncryptAES(encryptKey, []byte(plain))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// sensitiveBody reports whether the request body may carry credentials.
// Those bodies are never recorded, encrypted or not.
func sensitiveBody(path string) bool {
	return strings.Contains(path, "password") || strings.Contains(path, "/auth/")
}

// AuditMiddleware records one row per request for signed-in users. With a
// non-empty encryptKey the path and action are stored as AES-GCM
// ciphertext instead of plaintext.
func AuditMiddleware(db *gorm.DB, encryptKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		// keep the body readable for the handler
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		// only record operations of signed-in users
		if userID == 0 {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if !sensitiveBody(path) && len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		if encryptKey == "" {
			entry.Path = path
			entry.Action = action
		} else {
			encPath, err := encryptField(encryptKey, path)
			if err != nil {
				return
			}
			encAction, err := encryptField(encryptKey, action)
			if err != nil {
				return
			}
			entry.PathEnc = encPath
			entry.ActionEnc = encAction
		}

		_ = db.Create(&entry).Error
	}
}
