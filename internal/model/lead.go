package model

import "time"

// Lead is the passwordless customer identity: one row per phone number.
// Leads are created on registration and never mutated through the public API.
type Lead struct {
	ID        int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Phone     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Lead) TableName() string { return "leads" }
