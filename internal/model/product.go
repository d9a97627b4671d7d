package model

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog perfume. Prices travel as 2-decimal strings on the
// wire; PromoPrice is only meaningful while IsPromotion is set.
type Product struct {
	ID          int              `gorm:"primaryKey"`
	Name        string           `gorm:"not null"`
	Brand       string           `gorm:"not null"`
	Price       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Image       string           `gorm:"not null"`
	Category    string           `gorm:"index;not null"`
	Notes       string           `gorm:"not null"`
	Stock       int              `gorm:"not null;default:0"`
	IsPromotion bool             `gorm:"not null;default:false"`
	PromoPrice  *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (Product) TableName() string { return "products" }
