package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Prices are decimal strings on the wire ("149.90"); numeric validity is
// checked in the service because validator tags cannot parse decimals.
type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=1"`
	Brand       string  `json:"brand"       validate:"required,min=1"`
	Price       string  `json:"price"       validate:"required,min=1"`
	Image       string  `json:"image"       validate:"required,min=1"`
	Category    string  `json:"category"    validate:"required,min=1"`
	Notes       string  `json:"notes"       validate:"required,min=1"`
	Stock       *int    `json:"stock"       validate:"omitempty,min=0"`
	IsPromotion *bool   `json:"isPromotion"`
	PromoPrice  *string `json:"promoPrice"`
}

// UpdateProductRequest is a partial patch: nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Brand       *string `json:"brand"       validate:"omitempty,min=1"`
	Price       *string `json:"price"       validate:"omitempty,min=1"`
	Image       *string `json:"image"       validate:"omitempty,min=1"`
	Category    *string `json:"category"    validate:"omitempty,min=1"`
	Notes       *string `json:"notes"       validate:"omitempty,min=1"`
	Stock       *int    `json:"stock"       validate:"omitempty,min=0"`
	IsPromotion *bool   `json:"isPromotion"`
	PromoPrice  *string `json:"promoPrice"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductFilter struct {
	Category string `form:"category"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes"`
	Stock       int     `json:"stock"`
	IsPromotion bool    `json:"isPromotion"`
	PromoPrice  *string `json:"promoPrice"`
}
