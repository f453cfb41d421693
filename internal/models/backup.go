package models

import "time"

// Backup is the metadata row for an exported snapshot file.
type Backup struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	FileName  string `gorm:"size:128;not null"`
	FilePath  string `gorm:"size:255;not null"`
	Size      int64
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
