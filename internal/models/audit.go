package models

import "time"

// AuditLog records important operations for auditing. When an encrypt key
// is configured, Path and Action stay empty and the ciphertext lives in
// the *Enc columns.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    *uint  `gorm:"index"`
	Path      string `gorm:"size:255"`
	PathEnc   string `gorm:"type:text"`
	Method    string `gorm:"size:16"`
	Action    string `gorm:"size:1024"`
	ActionEnc string `gorm:"type:text"`
	IP        string `gorm:"size:64"`
	UserAgent string `gorm:"size:255"`
	CreatedAt time.Time
}
