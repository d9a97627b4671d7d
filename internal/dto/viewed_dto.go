package dto

import "time"

type AddViewedProductRequest struct {
	LeadID    int `json:"leadId"    validate:"required,gt=0"`
	ProductID int `json:"productId" validate:"required,gt=0"`
}

type ViewedProductResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"leadId"`
	ProductID int       `json:"productId"`
	ViewedAt  time.Time `json:"viewedAt"`
}
