package model

import "time"

// ViewedProduct is a lead's wishlist entry. The composite unique index backs
// the idempotent add: a second insert for the same pair fails and the caller
// returns the existing row instead.
type ViewedProduct struct {
	ID        int `gorm:"primaryKey"`
	LeadID    int `gorm:"uniqueIndex:idx_lead_product;not null"`
	ProductID int `gorm:"uniqueIndex:idx_lead_product;not null"`
	ViewedAt  time.Time
}

func (ViewedProduct) TableName() string { return "viewed_products" }
